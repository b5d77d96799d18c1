package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"Membuat Website menggunakan Tailwind", "membuat-website-menggunakan-tailwind"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"Multiple   spaces\tand\nnewlines", "multiple-spaces-and-newlines"},
		{"Symbols @#$% Stripped", "symbols-stripped"},
		{"--- hyphen -- runs ---", "hyphen-runs"},
		{"UPPER lower 123", "upper-lower-123"},
		{"🎉🎉🎉", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Encode(tc.title), "Encode(%q)", tc.title)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	title := "Portfolio Site v2 (Rewrite!)"
	first := Encode(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Encode(title))
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "new title", Decode("new-title"))
	assert.Equal(t, "c'est la vie", Decode("c%27est-la-vie"))
	// Broken percent escapes fall back to the hyphen-to-space form.
	assert.Equal(t, "bad %zz escape", Decode("bad-%zz-escape"))
}
