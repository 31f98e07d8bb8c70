package tokenlist

// KeyKind classifies what a key contributes to a token.
type KeyKind uint8

const (
	KeyAlphabet KeyKind = iota
	KeyNumber
	KeySymbol
	KeyMathOperator
	KeySpace
	KeyEmoji
)

// Key is one keystroke recorded on a token.
type Key struct {
	Kind KeyKind
	Text string
}

func Alphabet(text string) Key { return Key{Kind: KeyAlphabet, Text: text} }

func Number(text string) Key { return Key{Kind: KeyNumber, Text: text} }

func Symbol(text string) Key { return Key{Kind: KeySymbol, Text: text} }

func MathOperator(text string) Key { return Key{Kind: KeyMathOperator, Text: text} }

func Emoji(text string) Key { return Key{Kind: KeyEmoji, Text: text} }

// IsLatin reports whether k is an alphabet or digit key.
func (k Key) IsLatin() bool {
	return k.Kind == KeyAlphabet || k.Kind == KeyNumber
}

// AlphabetKeys splits text into one alphabet key per rune.
func AlphabetKeys(text string) []Key {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, Alphabet(string(r)))
	}
	return keys
}
