package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestToLatin1(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		want         string
		wantReplaced int
	}{
		{"ascii unchanged", "Rua A, 10 - Centro", "Rua A, 10 - Centro", 0},
		{"accented letters kept", "José Conceição", "Jos\xe9 Concei\xe7\xe3o", 0},
		{"euro sign replaced", "R$ 10 €", "R$ 10 ?", 1},
		{"emoji replaced by one placeholder", "Casa 🏠", "Casa ?", 1},
		{"cjk replaced", "東京", "??", 2},
		{"invalid utf8 replaced", "a\xffb", "a?b", 1},
		{"empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := ToLatin1(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReplaced, replaced)
		})
	}
}

func TestToLatin1_OneBytePerCharacter(t *testing.T) {
	in := "Ação ☃ ñ"
	got, _ := ToLatin1(in)

	assert.Len(t, got, len([]rune(in)))
}

func TestToLatin1_DecodesBack(t *testing.T) {
	in := "Declaração de residência — Niterói"
	encoded, replaced := ToLatin1(in)

	assert.Equal(t, 1, replaced)
	decoded, err := charmap.ISO8859_1.NewDecoder().String(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Declaração de residência ? Niterói", decoded)
}
