// lingodrill is a spaced-repetition sentence drilling player.
//
// Usage:
//
//	lingodrill [-verbose] [-no-audio] [-start N] [-end N]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hammamikhairi/lingodrill/internal/config"
	"github.com/hammamikhairi/lingodrill/internal/display"
	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
	"github.com/hammamikhairi/lingodrill/internal/sequencer"
	"github.com/hammamikhairi/lingodrill/internal/source"
	"github.com/hammamikhairi/lingodrill/internal/speech"
	"github.com/hammamikhairi/lingodrill/internal/studytime"
	"github.com/hammamikhairi/lingodrill/internal/voice"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".lingodrill/lingodrill.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "base/settings.yaml", "path to the settings file")
	workbook := flag.String("workbook", "base/en600new.xlsx", "path to the sentence workbook")
	sheet := flag.String("sheet", "", "workbook sheet to drill (overrides settings)")
	startRow := flag.Int("start", 0, "first sentence row (overrides settings)")
	endRow := flag.Int("end", 0, "last sentence row (overrides settings)")
	baseDir := flag.String("base-dir", "base", "directory for notification sound assets")
	cacheDir := flag.String("cache-dir", ".lingodrill-cache", "directory for the synthesis cache")
	studyDB := flag.String("study-db", ".lingodrill/study.db", "path to the study time ledger")
	noAudio := flag.Bool("no-audio", false, "run subtitle-only even if speech keys are set")
	noUI := flag.Bool("no-ui", false, "print plain text instead of the terminal UI")
	flag.Parse()

	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the UI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Settings, with flag overrides for this run only.
	settings, err := config.Load(*configPath)
	if err != nil {
		log.Warn("settings: %v (using defaults)", err)
	}
	if *sheet != "" {
		settings.Sheet = *sheet
	}
	if *startRow > 0 {
		settings.StartRow = *startRow
	}
	if *endRow > 0 {
		settings.EndRow = *endRow
	}

	// Sentence source.
	src, err := source.Open(*workbook, settings.Sheet, log)
	if errors.Is(err, domain.ErrSheetNotFound) {
		sheets, listErr := source.Sheets(*workbook)
		if listErr == nil && len(sheets) > 0 {
			log.Warn("sheet %q not found, using %q", settings.Sheet, sheets[0])
			src, err = source.Open(*workbook, sheets[0], log)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Study time ledger.
	store, err := studytime.Open(ctx, *studyDB, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening study ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tracker, err := studytime.NewTracker(ctx, store, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading study ledger: %v\n", err)
		os.Exit(1)
	}
	if hist, histErr := store.History(ctx, 7); histErr == nil && len(hist) > 0 {
		log.Debug("study history (last 7 days): %v", hist)
	}

	// Speech stack. Missing credentials or a missing audio device degrade
	// the session to subtitle-only pacing instead of refusing to run.
	var (
		synth   domain.Synthesizer
		player  domain.Player
		backend speech.Backend
	)

	speechKey := os.Getenv(speech.EnvSpeechKey)
	speechRegion := os.Getenv(speech.EnvSpeechRegion)

	if speechKey != "" && speechRegion != "" && !*noAudio {
		backend = speech.NewClient(speechKey, speechRegion, log)

		cache, err := speech.NewCache(*cacheDir, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		s := speech.NewSynthesizer(backend, cache, log)
		synth = s
		defer s.Purge()

		p, err := speech.NewPlayer(log)
		if err != nil {
			log.Error("audio unavailable, subtitles only: %v", err)
			player = speech.NewNoopPlayer(log)
		} else {
			player = p
		}
		log.Info("speech enabled (region=%s)", speechRegion)
	} else {
		if !*noAudio {
			log.Info("speech disabled: set %s and %s env vars to enable", speech.EnvSpeechKey, speech.EnvSpeechRegion)
		}
		synth = speech.NewNoopSynthesizer(log)
		player = speech.NewNoopPlayer(log)
	}

	sounds := speech.NewAssets(*baseDir, voice.AnnouncementVoiceID, backend, log)

	session := &domain.Session{
		ID:     uuid.NewString(),
		Config: settings.SessionConfig(),
	}

	deps := sequencer.Deps{
		Source: src,
		Voices: voice.NewResolver(nil, nil),
		Synth:  synth,
		Player: player,
		Clock:  tracker,
		Sounds: sounds,
		Log:    log,
	}

	if *noUI {
		deps.Display = display.NewConsole(nil)
		if err := sequencer.New(deps).Run(ctx, session); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ui := display.NewUI()
	deps.Display = ui
	seq := sequencer.New(deps)

	// The session runs on its own goroutine; Bubble Tea owns the terminal.
	go func() {
		ui.WaitReady()

		runCtx, stop := context.WithCancel(ctx)
		defer stop()
		go func() {
			<-ui.StopChan()
			player.Stop()
			stop()
		}()

		if err := seq.Run(runCtx, session); err != nil {
			log.Error("session: %v", err)
		}
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()

	log.Info("session %s finished: %s", session.ID, session.Status)
}
