package sentiment

// Admissible reports whether text may be classified: it must consist solely of
// ASCII letters, ASCII whitespace and the punctuation . , ; : ! ? " ' ( ) -
// and contain at least one letter. A single disallowed byte rejects the whole value.
func Admissible(text string) bool {
	hasLetter := false
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case isASCIILetter(b):
			hasLetter = true
		case isASCIISpace(b), isAllowedPunctuation(b):
		default:
			return false
		}
	}
	return hasLetter
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAllowedPunctuation(b byte) bool {
	switch b {
	case '.', ',', ';', ':', '!', '?', '"', '\'', '(', ')', '-':
		return true
	}
	return false
}
