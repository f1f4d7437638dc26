package domain

import "strings"

// Escape transforms text so it can be injected into a field's
// single-quoted assignment context without terminating it early.
// Backslashes are doubled first so the other replacements cannot
// produce sequences that re-escape themselves.
func Escape(text string) string {
	replacements := [][2]string{
		{`\`, `\\`},
		{`'`, `\'`},
		{`"`, `\"`},
		{"\n", `\n`},
		{"\r", `\r`},
	}
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}

// Interpret is the inverse of Escape: it resolves the escape sequences
// of an injected literal back into the text the user edited. Elements
// apply it when an escaped literal is written into them, so
// Interpret(Escape(t)) == t for every t.
func Interpret(literal string) string {
	var b strings.Builder
	b.Grow(len(literal))
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c != '\\' || i+1 == len(literal) {
			b.WriteByte(c)
			continue
		}
		i++
		switch literal[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(literal[i])
		default:
			// Unknown sequence, keep it verbatim.
			b.WriteByte('\\')
			b.WriteByte(literal[i])
		}
	}
	return b.String()
}
