package cmd

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/viant/syncdict/inspect"
	"github.com/viant/syncdict/inspect/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *inspect.Service
	svcErr  error

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first. Every invocation starts with a fresh service.
func setConfigPath(p string) {
	cfgPath = p
	svcOnce = sync.Once{}
	svcInst, svcErr = nil, nil
}

// serviceSingleton initialises an inspect.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*inspect.Service, error) {
	svcOnce.Do(func() {
		cfg := config.Default()
		if cfgPath != "" {
			if cfg, svcErr = config.Load(cfgPath); svcErr != nil {
				return
			}
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		svcInst = inspect.New(inspect.WithConfig(cfg), inspect.WithLogger(logger))
	})
	return svcInst, svcErr
}

// colorEnabled reports whether output to w should be highlighted.
func colorEnabled(cfg *config.Config, w io.Writer) bool {
	terminal := false
	if f, ok := w.(*os.File); ok {
		terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return cfg.ColorEnabled(terminal)
}
