package tokenlist

// SpellMode controls how a resolved phonetic word shows its reading.
type SpellMode uint8

const (
	// SpellHidden renders only the word.
	SpellHidden SpellMode = iota
	// SpellFollowing renders "word(reading)".
	SpellFollowing
	// SpellReplacing renders only the reading ("reading-only" display).
	SpellReplacing
)

// DisplayOption changes the text projection without touching stored data.
type DisplayOption struct {
	// PreferVariant renders a word's alternate written form when it has one.
	PreferVariant bool
	SpellMode     SpellMode
}
