package extract

// BalancedSpan returns the index of the closing brace matching the opening
// brace at s[open], scanning with a depth counter so nested blocks cannot
// end the span early. ok is false when s[open] is not '{' or the braces
// never balance.
func BalancedSpan(s string, open int) (end int, ok bool) {
	if open < 0 || open >= len(s) || s[open] != '{' {
		return 0, false
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
