package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boxel"
	"boxel/internal/config"
)

var (
	cfgFile    string
	forceError bool

	rootCmd = &cobra.Command{
		Use:   "boxel",
		Short: "Draw bordered, coloured boxes on the terminal",
		Long:  longRoot,
		RunE:  run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "layout file (YAML)")
	flags.String("driver", config.DriverTerm, "terminal driver: term, tcell or tea")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.BoolVar(&forceError, "force-error", false, "make the movable box report a height error on every draw")

	viper.BindPFlag("driver", flags.Lookup("driver"))
	viper.BindPFlag("log_file", flags.Lookup("log-file"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	switch cfg.Driver {
	case config.DriverTcell:
		return runTcell(cfg, logger)
	case config.DriverTea:
		return runTea(cfg, logger)
	default:
		return runTerm(cfg, logger)
	}
}

// newLogger logs to the configured file, or nowhere. The terminal is busy
// showing the frame.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "boxel",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func layoutFor(cfg *config.Config, size boxel.Size) ([]boxel.DivOptions, error) {
	if len(cfg.Boxes) == 0 {
		return defaultLayout(size, forceError), nil
	}
	return cfg.DivOptions()
}

func runTerm(cfg *config.Config, logger *log.Logger) error {
	t := boxel.NewTerminal(nil, nil)
	size, err := t.Size()
	if err != nil {
		logger.Warn("using default size", "error", err)
		size = defaultSize
	}

	divs, err := layoutFor(cfg, size)
	if err != nil {
		return err
	}

	if err := t.EnterRawMode(); err != nil {
		return err
	}
	defer t.ExitRawMode()

	a := newApp(boxel.NewWindow(size, t, boxel.WithLogger(logger)), divs, logger)
	return a.loop(t.Keys())
}

func runTcell(cfg *config.Config, logger *log.Logger) error {
	screen, err := boxel.NewTcellScreen()
	if err != nil {
		return err
	}
	sink := boxel.NewTcellSink(screen)
	defer sink.Close()

	size := sink.Size()
	divs, err := layoutFor(cfg, size)
	if err != nil {
		return err
	}

	a := newApp(boxel.NewWindow(size, sink, boxel.WithLogger(logger)), divs, logger)
	return a.loop(sink.Keys())
}

func runTea(cfg *config.Config, logger *log.Logger) error {
	size, err := boxel.NewTerminal(nil, nil).Size()
	if err != nil {
		logger.Warn("using default size", "error", err)
		size = defaultSize
	}

	divs, err := layoutFor(cfg, size)
	if err != nil {
		return err
	}

	// The program renders View itself; Window.Render is not used.
	discard := boxel.FrameFunc(func(string) error { return nil })
	a := newApp(boxel.NewWindow(size, discard, boxel.WithLogger(logger)), divs, logger)
	a.draw()

	model := boxel.NewTeaModel(a.window, func(k boxel.Key) error {
		if a.handleKey(k) {
			a.draw()
		}
		return nil
	})
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	if m, ok := final.(boxel.TeaModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

var longRoot = `
Draw a layout of boxes and redraw it on every key press.

Keys:
  q, ctrl+c   quit
  arrows      move the highlighted box
  tab         focus the next movable box

Examples:
  # Built-in layout on the current terminal.
  boxel

  # Layout from a file, drawn through tcell, with debug logs.
  boxel --config layout.yml --driver tcell --log-file boxel.log --log-level debug
`
