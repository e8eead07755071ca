package utils

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Latin1Replacement is written in place of characters ISO-8859-1 cannot represent
const Latin1Replacement byte = '?'

// ToLatin1 encodes s as ISO-8859-1. Characters outside the charset, and
// invalid UTF-8 bytes, become Latin1Replacement. It also reports how many
// characters were replaced.
func ToLatin1(s string) (string, int) {
	out := make([]byte, 0, len(s))
	replaced := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			out = append(out, Latin1Replacement)
			replaced++
			continue
		}
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			out = append(out, Latin1Replacement)
			replaced++
			continue
		}
		out = append(out, b)
	}
	return string(out), replaced
}
