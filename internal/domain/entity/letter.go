package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Letter — эталонная буква: короткий идентификатор и символ деванагари.
type Letter struct {
	ID    string
	Glyph string
}

// Description возвращает читаемое описание символа для логов,
// например "क U+0915 DEVANAGARI LETTER KA".
func (l Letter) Description() string {
	parts := make([]string, 0, len(l.Glyph))
	for _, r := range l.Glyph {
		parts = append(parts, fmt.Sprintf("%c U+%04X %s", r, r, runenames.Name(r)))
	}
	return strings.Join(parts, ", ")
}

// LetterCatalog — неизменяемый упорядоченный список эталонных букв.
type LetterCatalog struct {
	letters []Letter
}

// NewLetterCatalog создаёт каталог, приводя символы к NFC.
func NewLetterCatalog(letters ...Letter) LetterCatalog {
	out := make([]Letter, len(letters))
	for i, l := range letters {
		out[i] = Letter{ID: l.ID, Glyph: norm.NFC.String(l.Glyph)}
	}
	return LetterCatalog{letters: out}
}

// DefaultCatalog возвращает 31 базовую букву деванагари.
func DefaultCatalog() LetterCatalog {
	return NewLetterCatalog(
		Letter{"a", "अ"}, Letter{"aa", "आ"}, Letter{"i", "इ"}, Letter{"ii", "ई"},
		Letter{"u", "उ"}, Letter{"uu", "ऊ"}, Letter{"e", "ए"}, Letter{"o", "ओ"},
		Letter{"ka", "क"}, Letter{"kha", "ख"}, Letter{"ga", "ग"}, Letter{"gha", "घ"},
		Letter{"ca", "च"}, Letter{"cha", "छ"}, Letter{"ja", "ज"}, Letter{"jha", "झ"},
		Letter{"ta", "त"}, Letter{"tha", "थ"}, Letter{"da", "द"}, Letter{"dha", "ध"},
		Letter{"na", "न"}, Letter{"pa", "प"}, Letter{"pha", "फ"}, Letter{"ba", "ब"},
		Letter{"bha", "भ"}, Letter{"ma", "म"}, Letter{"ya", "य"}, Letter{"ra", "र"},
		Letter{"la", "ल"}, Letter{"va", "व"}, Letter{"sa", "स"},
	)
}

// Letters возвращает копию списка букв в исходном порядке.
func (c LetterCatalog) Letters() []Letter {
	out := make([]Letter, len(c.letters))
	copy(out, c.letters)
	return out
}

// Len возвращает количество букв.
func (c LetterCatalog) Len() int {
	return len(c.letters)
}

// Lookup ищет букву по идентификатору.
func (c LetterCatalog) Lookup(id string) (Letter, bool) {
	for _, l := range c.letters {
		if l.ID == id {
			return l, true
		}
	}
	return Letter{}, false
}
