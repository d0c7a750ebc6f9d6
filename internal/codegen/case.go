package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KebabCase converts a camel-case property name to its CSS spelling:
// "flexDirection" -> "flex-direction". Every ASCII uppercase letter gets a
// leading hyphen. Names already in kebab case pass through.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

// CamelCase converts a kebab-case property name to its JavaScript spelling:
// "flex-direction" -> "flexDirection". Each hyphen is dropped and the
// character after it upper-cased. Names already in camel case pass through.
func CamelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) {
			r, size := utf8.DecodeRuneInString(name[i+1:])
			if r == utf8.RuneError && size == 1 {
				b.WriteByte(name[i+1])
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			i += size
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
