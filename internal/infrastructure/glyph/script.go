package glyph

import "github.com/go-text/typesetting/language"

// IsDevanagari сообщает, что все символы строки относятся к письму деванагари.
func IsDevanagari(glyph string) bool {
	if glyph == "" {
		return false
	}
	for _, r := range glyph {
		if language.LookupScript(r) != language.Devanagari {
			return false
		}
	}
	return true
}
