package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeWords upper-cases the first letter of each space-separated
// word, leaving the rest of each word untouched.
//
// Words are delimited by single spaces only; runs of spaces survive
// the round trip unchanged. The transform is idempotent.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + word[size:]
}

// NormalizeNames rewrites every tracked person's Name through
// CapitalizeWords. The rewrite is in place: names seen through
// previously returned pointers change too.
func (r *Roster) NormalizeNames() {
	r.people.Each(func(p *Person) {
		p.Name = CapitalizeWords(p.Name)
	})
}
