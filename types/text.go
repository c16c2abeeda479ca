package types

import "strings"

// SGF text handling. Inside a bracketed value a backslash makes the next
// character literal, and a backslash immediately followed by a newline
// removes both (line continuation). SimpleText flattens every whitespace
// run to a single space; Text keeps newlines and flattens the rest.

func isTextSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func unescape(s string, keepNewlines bool) string {
	var out strings.Builder
	out.Grow(len(s))
	lastSpace := false
	writeSpace := func() {
		if !lastSpace {
			out.WriteByte(' ')
			lastSpace = true
		}
	}
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 >= len(s) {
				i++
				continue
			}
			n := s[i+1]
			if n == '\n' || n == '\r' {
				// Line continuation: the backslash and the newline vanish.
				i += 2
				if n == '\r' && i < len(s) && s[i] == '\n' {
					i++
				}
				continue
			}
			out.WriteByte(n)
			lastSpace = false
			i += 2
		case c == '\n' || c == '\r':
			i++
			if c == '\r' && i < len(s) && s[i] == '\n' {
				i++
			}
			if keepNewlines {
				out.WriteByte('\n')
				lastSpace = true
			} else {
				writeSpace()
			}
		case isTextSpace(c):
			i++
			writeSpace()
		default:
			out.WriteByte(c)
			lastSpace = false
			i++
		}
	}
	return out.String()
}

// UnescapeText decodes a Text value, preserving newlines.
func UnescapeText(s string) string {
	return unescape(s, true)
}

// UnescapeSimpleText decodes a SimpleText value, flattening newlines.
func UnescapeSimpleText(s string) string {
	return unescape(s, false)
}

// EscapeText encodes a value for a bracketed payload. When composed is
// true the value is part of a ':'-separated compose and the separator is
// escaped as well.
func EscapeText(s string, composed bool) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ']' || c == '\\' || (composed && c == ':') {
			out.WriteByte('\\')
		}
		out.WriteByte(c)
	}
	return out.String()
}
