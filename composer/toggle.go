package composer

import (
	"context"
	"strings"

	"github.com/iw2rmb/syllable/tokenlist"
)

// Toggle is a spelling correction for commonly confused readings.
type Toggle uint8

const (
	// ToggleSCZ switches a flat onset s/c/z with the retroflex sh/ch/zh.
	ToggleSCZ Toggle = iota + 1
	// ToggleNL switches an n onset with l.
	ToggleNL
	// ToggleNG switches a front nasal ending -n with the back -ng.
	ToggleNG
)

var allToggles = []Toggle{ToggleSCZ, ToggleNL, ToggleNG}

func (t Toggle) String() string {
	switch t {
	case ToggleSCZ:
		return "s/c/z↔sh/ch/zh"
	case ToggleNL:
		return "n↔l"
	case ToggleNG:
		return "-n↔-ng"
	default:
		return "unknown"
	}
}

// Apply returns key with t applied. ok is false when t does not apply.
func (t Toggle) Apply(key string) (out string, ok bool) {
	if key == "" {
		return "", false
	}
	switch t {
	case ToggleSCZ:
		for _, onset := range []string{"sh", "ch", "zh"} {
			if strings.HasPrefix(key, onset) {
				return key[:1] + key[2:], true
			}
		}
		switch key[0] {
		case 's', 'c', 'z':
			return key[:1] + "h" + key[1:], true
		}
	case ToggleNL:
		switch key[0] {
		case 'n':
			return "l" + key[1:], true
		case 'l':
			return "n" + key[1:], true
		}
	case ToggleNG:
		for _, ending := range []string{"eng", "ing", "ang"} {
			if strings.HasSuffix(key, ending) {
				return key[:len(key)-1], true
			}
		}
		for _, ending := range []string{"en", "in", "an"} {
			if strings.HasSuffix(key, ending) {
				return key + "g", true
			}
		}
	}
	return "", false
}

// Toggles lists the corrections that turn the pending spelling into
// another reading the dictionary knows.
func (s *Session) Toggles() []Toggle {
	key := s.spellingKey()
	var out []Toggle
	for _, t := range allToggles {
		if next, ok := t.Apply(key); ok && s.cfg.Dictionary.IsValidSpelling(next) {
			out = append(out, t)
		}
	}
	return out
}

// ToggleSpelling respells the pending token with t and looks up the new
// reading. It does nothing when the result is not a known reading.
func (s *Session) ToggleSpelling(ctx context.Context, t Toggle) bool {
	next, ok := t.Apply(s.spellingKey())
	if !ok || !s.cfg.Dictionary.IsValidSpelling(next) {
		return false
	}
	s.list.Pending().ReplaceKeys(tokenlist.AlphabetKeys(next))
	s.log.Debug("toggle spelling", "toggle", t, "keys", next)

	s.lookup(ctx)
	s.emit(SequenceChanged)
	return true
}
