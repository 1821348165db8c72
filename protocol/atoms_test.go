package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitAtoms(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		atoms []string
	}{
		{
			name:  "quoted description",
			line:  `fd "Free Online Dictionary" foldoc`,
			atoms: []string{"fd", "Free Online Dictionary", "foldoc"},
		},
		{
			name:  "database listing line",
			line:  `foldoc "Free On-line Dictionary of Computing"`,
			atoms: []string{"foldoc", "Free On-line Dictionary of Computing"},
		},
		{
			name:  "definition status",
			line:  `151 "hot dog" wn "WordNet (r) 3.0 (2006)"`,
			atoms: []string{"151", "hot dog", "wn", "WordNet (r) 3.0 (2006)"},
		},
		{
			name:  "runs of whitespace",
			line:  "  prefix \t  Match prefixes  ",
			atoms: []string{"prefix", "Match", "prefixes"},
		},
		{
			name:  "empty line",
			line:  "",
			atoms: nil,
		},
		{
			name:  "only whitespace",
			line:  " \t ",
			atoms: nil,
		},
		{
			name:  "empty quoted atom",
			line:  `a "" b`,
			atoms: []string{"a", "", "b"},
		},
		{
			name:  "quote inside atom",
			line:  `ab"c d"e f`,
			atoms: []string{"abc de", "f"},
		},
		{
			name:  "unterminated quote",
			line:  `wn "WordNet (r`,
			atoms: []string{"wn", "WordNet (r"},
		},
		{
			name:  "unterminated quote with trailing space",
			line:  `wn "WordNet `,
			atoms: []string{"wn", "WordNet "},
		},
		{
			name:  "escaped quote",
			line:  `a "say \"hi\"" b`,
			atoms: []string{"a", `say "hi"`, "b"},
		},
		{
			name:  "trailing backslash in quotes",
			line:  `a "b\`,
			atoms: []string{"a", `b\`},
		},
		{
			name:  "backslash outside quotes is literal",
			line:  `a\b c`,
			atoms: []string{`a\b`, "c"},
		},
		{
			name:  "trailing CRLF",
			line:  "250 ok\r\n",
			atoms: []string{"250", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.atoms, SplitAtoms(tt.line))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cat", `"cat"`},
		{"hot dog", `"hot dog"`},
		{"", `""`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Quote(tt.in))
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, word := range []string{"cat", "hot dog", `say "hi"`, `back\slash`, "  spaced  "} {
		atoms := SplitAtoms("DEFINE * " + Quote(word))
		require.Len(t, atoms, 3)
		require.Equal(t, word, atoms[2])
	}
}
