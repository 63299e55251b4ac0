package display

import (
	"fmt"
	"io"
	"os"

	"github.com/hammamikhairi/lingodrill/internal/domain"
)

// Console is a line-oriented renderer for non-interactive runs: every
// subtitle and progress update is printed as plain text. Used when the
// terminal UI is disabled.
type Console struct {
	out io.Writer
}

var _ domain.SubtitleRenderer = (*Console)(nil)

// NewConsole creates a console renderer. Pass nil to write to stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) ShowSubtitle(rank domain.Rank, text string, slot domain.Slot) {
	fmt.Fprintf(c.out, "[%s] %s\n", rank, text)
}

func (c *Console) ClearSubtitles() {
	fmt.Fprintln(c.out)
}

func (c *Console) ShowProgress(p domain.Progress) {
	if p.Note != "" {
		fmt.Fprintf(c.out, "-- %s\n", p.Note)
	}
	fmt.Fprintf(c.out, "-- row %d, sentence %d/%d, pass %d/%d, %dm today\n",
		p.RowIndex, p.Position, p.Total, p.Pass, p.TotalPasses, p.StudyMinutes)
}
