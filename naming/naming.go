// Package naming converts Rust snake_case identifiers into C# member and parameter names.
package naming

import "strings"

const separator = "_"

// Member converts snake_case into PascalCase: foo_bar_zet -> FooBarZet.
// Only the first letter of every word is changed, the remaining letters are kept as declared.
func Member(name string) string {
	words := strings.Split(name, separator)
	for i, word := range words {
		words[i] = Capitalize(word)
	}
	return strings.Join(words, "")
}

// Parameter converts snake_case into camelCase: foo_bar -> fooBar
func Parameter(name string) string {
	return Decapitalize(Member(name))
}

// Capitalize upper cases the first ASCII letter
func Capitalize(text string) string {
	if text == "" {
		return text
	}
	first := text[0]
	if first >= 'a' && first <= 'z' {
		return string(first-'a'+'A') + text[1:]
	}
	return text
}

// Decapitalize lower cases the first ASCII letter
func Decapitalize(text string) string {
	if text == "" {
		return text
	}
	first := text[0]
	if first >= 'A' && first <= 'Z' {
		return string(first-'A'+'a') + text[1:]
	}
	return text
}
