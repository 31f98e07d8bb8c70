package composer

import (
	"log/slog"

	"github.com/iw2rmb/syllable/candidate"
	"github.com/iw2rmb/syllable/dict"
	"github.com/iw2rmb/syllable/tokenlist"
)

const (
	defaultPageSize        = 9
	defaultCompletionLimit = 3
)

// Config configures a Session.
type Config struct {
	// Dictionary answers candidate lookups. It is required. When it also
	// implements dict.Learner or dict.PhrasePredictor, choices are learned
	// and phrase completions are offered.
	Dictionary dict.Dictionary

	// Candidates shown per page. Zero means 9.
	PageSize int

	// Maximum phrase completions kept after a choice. Zero means 3;
	// negative disables completions.
	CompletionLimit int

	Display tokenlist.DisplayOption

	// Symbol boards. Nil means DefaultSymbols.
	Symbols []candidate.Group[string]

	// Nil discards log records.
	Logger *slog.Logger

	// OnEvent is called after every command that changed what a view
	// would show.
	OnEvent func(Event)
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.CompletionLimit == 0 {
		c.CompletionLimit = defaultCompletionLimit
	}
	if c.Symbols == nil {
		c.Symbols = DefaultSymbols()
	}
	return c
}
