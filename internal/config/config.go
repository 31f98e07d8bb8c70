// Package config loads the syllable TOML configuration and watches it for
// changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/syllable/internal/logging"
	"github.com/iw2rmb/syllable/tokenlist"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Dictionary kinds.
const (
	DictAuto   = ""
	DictYAML   = "yaml"
	DictSQLite = "sqlite"
)

// Spell modes accepted in [display].
const (
	SpellHidden    = "hidden"
	SpellFollowing = "following"
	SpellReplacing = "replacing"
)

const maxPageSize = 64

// Config is the whole configuration file.
//
//	[display]
//	prefer_variant = false
//	spell_mode = "hidden"
//
//	[candidates]
//	page_size = 9
//
//	[dictionary]
//	path = "~/.config/syllable/words.db"
//	kind = "sqlite"
//
//	[log]
//	level = "info"
//	format = "text"
type Config struct {
	Display    Display    `toml:"display"`
	Candidates Candidates `toml:"candidates"`
	Dictionary Dictionary `toml:"dictionary"`
	Log        Log        `toml:"log"`
}

type Display struct {
	PreferVariant bool   `toml:"prefer_variant"`
	SpellMode     string `toml:"spell_mode"`
}

type Candidates struct {
	PageSize int `toml:"page_size"`
}

// Dictionary locates the word source. An empty Kind is inferred from the
// file extension.
type Dictionary struct {
	Path string `toml:"path"`
	Kind string `toml:"kind"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Display:    Display{SpellMode: SpellHidden},
		Candidates: Candidates{PageSize: 9},
		Log:        Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalid, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	var errs []error

	if _, err := parseSpellMode(c.Display.SpellMode); err != nil {
		errs = append(errs, err)
	}
	if c.Candidates.PageSize < 1 || c.Candidates.PageSize > maxPageSize {
		errs = append(errs, fmt.Errorf("%w: candidates.page_size %d out of range 1..%d", ErrInvalid, c.Candidates.PageSize, maxPageSize))
	}
	if c.Dictionary.Path != "" {
		if _, err := c.DictionaryKind(); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %v", ErrInvalid, err))
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.format: %v", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// DictionaryKind resolves the dictionary kind, inferring it from the path
// when unset.
func (c *Config) DictionaryKind() (string, error) {
	switch kind := strings.ToLower(c.Dictionary.Kind); kind {
	case DictYAML, DictSQLite:
		return kind, nil
	case DictAuto:
		switch strings.ToLower(filepath.Ext(c.Dictionary.Path)) {
		case ".yaml", ".yml":
			return DictYAML, nil
		case ".db", ".sqlite", ".sqlite3":
			return DictSQLite, nil
		}
		return "", fmt.Errorf("%w: cannot infer dictionary kind of %q", ErrInvalid, c.Dictionary.Path)
	default:
		return "", fmt.Errorf("%w: dictionary.kind %q", ErrInvalid, c.Dictionary.Kind)
	}
}

// DisplayOption converts [display]. Call Validate first; unknown modes map
// to SpellHidden.
func (c *Config) DisplayOption() tokenlist.DisplayOption {
	mode, _ := parseSpellMode(c.Display.SpellMode)
	return tokenlist.DisplayOption{PreferVariant: c.Display.PreferVariant, SpellMode: mode}
}

// Logging converts [log] into a logger config writing to w.
func (c *Config) Logging(w io.Writer) logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Output = w
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	if format, err := logging.ParseFormat(c.Log.Format); err == nil {
		cfg.Format = format
	}
	return cfg
}

func parseSpellMode(s string) (tokenlist.SpellMode, error) {
	switch strings.ToLower(s) {
	case "", SpellHidden:
		return tokenlist.SpellHidden, nil
	case SpellFollowing:
		return tokenlist.SpellFollowing, nil
	case SpellReplacing:
		return tokenlist.SpellReplacing, nil
	default:
		return tokenlist.SpellHidden, fmt.Errorf("%w: display.spell_mode %q", ErrInvalid, s)
	}
}
