package protocol

import "strings"

// SplitAtoms splits one protocol line into atoms.
//
// Atoms are separated by runs of spaces or tabs. A double-quoted span is
// part of a single atom: the quotes are dropped and the whitespace inside
// is kept, so `fd "Free Online Dictionary" foldoc` yields three atoms.
// Inside quotes a backslash escapes the next character.
//
// Malformed input never fails: an unterminated quote extends the last atom
// to the end of the line, and a trailing backslash is kept literally.
func SplitAtoms(line string) []string {
	var (
		atoms   []string
		current strings.Builder
		inAtom  bool // current holds an atom, possibly empty ("")
		quoted  bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]

		if quoted {
			switch c {
			case '"':
				quoted = false
			case '\\':
				if i+1 < len(line) {
					i++
					current.WriteByte(line[i])
				} else {
					current.WriteByte(c)
				}
			default:
				current.WriteByte(c)
			}
			continue
		}

		switch c {
		case ' ', '\t', '\r', '\n':
			if inAtom {
				atoms = append(atoms, current.String())
				current.Reset()
				inAtom = false
			}
		case '"':
			quoted = true
			inAtom = true
		default:
			current.WriteByte(c)
			inAtom = true
		}
	}

	if inAtom {
		atoms = append(atoms, current.String())
	}

	return atoms
}

// Quote wraps s in double quotes so that the server reads it as one atom,
// escaping embedded quotes and backslashes.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}
