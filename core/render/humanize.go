package render

import "strings"

// Humanize turns a snake_case key into a display label: underscores become
// spaces and each word is title-cased. Purely cosmetic, deterministic, and
// locale-independent: only ASCII letters change case. Capitalization applies
// to the first letter of each space-separated word only; a digit inside a
// word does not restart it ("ab1cd" becomes "Ab1cd").
func Humanize(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		words[i] = titleWordASCII(word)
	}
	return strings.Join(words, " ")
}

func titleWordASCII(word string) string {
	if word == "" {
		return word
	}
	b := []byte(word)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
