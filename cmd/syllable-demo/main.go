// syllable-demo is a terminal driver for a composition session. Type
// readings, pick candidates with digits or space, and commit with enter.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "embed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/syllable"
	"github.com/iw2rmb/syllable/composer"
	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/dict/sqlitedict"
	"github.com/iw2rmb/syllable/internal/config"
	"github.com/iw2rmb/syllable/internal/logging"
)

//go:embed sample.yaml
var sampleDict string

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	dictPath := flag.String("dict", "", "dictionary file (.yaml seed or .db SQLite), overrides the config")
	logPath := flag.String("log", "", "write logs to this file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("syllable-demo", syllable.VersionTag())
		return
	}
	if err := run(*configPath, *dictPath, *logPath); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(configPath, dictPath, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if dictPath != "" {
		cfg.Dictionary = config.Dictionary{Path: dictPath}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The terminal belongs to the UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	lc := cfg.Logging(logOut)
	lc.Component = "syllable-demo"
	log := logging.New(lc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, closeDict, err := openDictionary(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDict()

	ev := &lastEvent{}
	s, err := composer.New(composer.Config{
		Dictionary: d,
		PageSize:   cfg.Candidates.PageSize,
		Display:    cfg.DisplayOption(),
		Logger:     logging.Component(log, "composer"),
		OnEvent:    ev.record,
	})
	if err != nil {
		return err
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	p := tea.NewProgram(newModel(ctx, s, ev, newStyles(lipgloss.DefaultRenderer())), tea.WithAltScreen())

	if configPath != "" {
		w, err := config.Watch(ctx, configPath, func(c *config.Config) {
			log.Info("config reloaded", "path", configPath)
			p.Send(configMsg{cfg: c})
		})
		if err != nil {
			log.Warn("config watch disabled", "err", err)
		} else {
			defer w.Close()
			go func() {
				for err := range w.Errors() {
					log.Warn("config reload", "err", err)
				}
			}()
		}
	}

	log.Info("session started", "session", s.ID().String(), "version", syllable.Version())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// openDictionary opens the configured dictionary. Without one the
// embedded sample is used. An empty SQLite database is seeded with it.
func openDictionary(ctx context.Context, cfg *config.Config, log *slog.Logger) (dict.Dictionary, func(), error) {
	noop := func() {}
	if cfg.Dictionary.Path == "" {
		m, err := dict.LoadYAML(strings.NewReader(sampleDict))
		return m, noop, err
	}

	kind, err := cfg.DictionaryKind()
	if err != nil {
		return nil, noop, err
	}
	switch kind {
	case config.DictYAML:
		m, err := dict.LoadYAMLFile(cfg.Dictionary.Path)
		return m, noop, err
	case config.DictSQLite:
		store, err := sqlitedict.Open(cfg.Dictionary.Path)
		if err != nil {
			return nil, noop, err
		}
		closeStore := func() {
			if err := store.Close(); err != nil {
				log.Warn("close dictionary", "err", err)
			}
		}
		n, err := store.Count(ctx)
		if err == nil && n == 0 {
			if err = seedStore(ctx, store); err == nil {
				log.Info("seeded dictionary", "path", cfg.Dictionary.Path)
			}
		}
		if err != nil {
			closeStore()
			return nil, noop, err
		}
		return store, closeStore, nil
	}
	return nil, noop, fmt.Errorf("unsupported dictionary kind %q", kind)
}

func seedStore(ctx context.Context, store *sqlitedict.Store) error {
	m, err := dict.LoadYAML(strings.NewReader(sampleDict))
	if err != nil {
		return err
	}
	return store.ImportMemory(ctx, m)
}
