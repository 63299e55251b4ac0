// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type renders the three ranked subtitle rows, a pass progress bar
// and a status line. The sequencer drives it through the SubtitleRenderer
// port; all updates arrive as Bubble Tea messages so concurrent senders
// never garble the display.
package display

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/lingodrill/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	emptyRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46"))
)

// bigFontThreshold is the configured font size at or above which a subtitle
// row renders bold. Terminals have no font sizes; the stored setting is
// preserved untouched and approximated here.
const bigFontThreshold = 32

// styleFor builds the lipgloss style for one slot's subtitle row.
func styleFor(slot domain.Slot) lipgloss.Style {
	s := lipgloss.NewStyle()
	if slot.Color != "" {
		s = s.Foreground(lipgloss.Color(slot.Color))
	}
	if slot.FontSize >= bigFontThreshold {
		s = s.Bold(true)
	}
	return s
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). The sequencer goroutine may call
// the SubtitleRenderer methods at any time after [UI.WaitReady] returns.
// Pressing q or ctrl+c closes [UI.StopChan] so the session can be
// cancelled.
type UI struct {
	program *tea.Program
	readyCh chan struct{}
	stopCh  chan struct{}
	done    atomic.Bool
	once    sync.Once
}

var _ domain.SubtitleRenderer = (*UI)(nil)

// NewUI creates the display. Call Run() to start.
func NewUI() *UI {
	return &UI{
		readyCh: make(chan struct{}),
		stopCh:  make(chan struct{}),
	}
}

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// StopChan is closed when the user asks to stop the session.
func (u *UI) StopChan() <-chan struct{} { return u.stopCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// ShowSubtitle renders one rank's subtitle row with the slot's color and
// size. Thread-safe.
func (u *UI) ShowSubtitle(rank domain.Rank, text string, slot domain.Slot) {
	u.send(subtitleMsg{rank: rank, text: text, slot: slot})
}

// ClearSubtitles blanks all three subtitle rows. Thread-safe.
func (u *UI) ClearSubtitles() {
	u.send(clearMsg{})
}

// ShowProgress updates the progress bar and status line. Thread-safe.
func (u *UI) ShowProgress(p domain.Progress) {
	u.send(progressMsg{p})
}

func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
	}
}

func (u *UI) requestStop() {
	u.once.Do(func() { close(u.stopCh) })
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	m := model{
		bar:     progress.New(progress.WithDefaultGradient()),
		readyCh: u.readyCh,
		stopFn:  u.requestStop,
	}

	u.program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := u.program.Run()
	u.done.Store(true)
	u.requestStop()
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type subtitleMsg struct {
	rank domain.Rank
	text string
	slot domain.Slot
}

type clearMsg struct{}

type progressMsg struct {
	p domain.Progress
}

type subtitleRow struct {
	text  string
	style lipgloss.Style
}

type model struct {
	bar     progress.Model
	rows    [3]subtitleRow
	prog    domain.Progress
	width   int
	readyCh chan struct{}
	stopFn  func()
}

func (m model) Init() tea.Cmd {
	return signalReady(m.readyCh)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopFn()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 4
		return m, nil

	case subtitleMsg:
		m.rows[int(msg.rank)] = subtitleRow{
			text:  msg.text,
			style: styleFor(msg.slot),
		}
		return m, nil

	case clearMsg:
		m.rows = [3]subtitleRow{}
		return m, nil

	case progressMsg:
		m.prog = msg.p
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" lingodrill"))
	b.WriteString("\n\n")

	for _, row := range m.rows {
		if row.text == "" {
			b.WriteString(emptyRowStyle.Render("  ·"))
		} else {
			b.WriteString("  " + row.style.Render(row.text))
		}
		b.WriteString("\n\n")
	}

	if m.prog.Total > 0 {
		b.WriteString("  " + m.bar.ViewAs(float64(m.prog.Position)/float64(m.prog.Total)))
		b.WriteByte('\n')
		b.WriteString(statusStyle.Render(m.statusLine()))
		b.WriteByte('\n')
		if m.prog.Note != "" {
			b.WriteString(noteStyle.Render("  " + m.prog.Note))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(sepStyle.Render("  q: stop"))
	return b.String()
}

func (m model) statusLine() string {
	sep := sepStyle.Render(" │ ")
	parts := []string{
		fmt.Sprintf("  row %d", m.prog.RowIndex),
		fmt.Sprintf("sentence %d/%d", m.prog.Position, m.prog.Total),
	}
	if m.prog.TotalPasses > 1 {
		parts = append(parts, fmt.Sprintf("pass %d/%d", m.prog.Pass, m.prog.TotalPasses))
	}
	parts = append(parts, fmt.Sprintf("study %dm today", m.prog.StudyMinutes))
	return strings.Join(parts, sep)
}
