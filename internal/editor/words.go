package editor

import "unicode"

// JumpMode controls how a word jump treats whitespace next to the
// starting position.
type JumpMode int

const (
	// JumpIgnoreWhitespaces steps over whitespace one cell at a time and
	// keeps scanning until a real token has been consumed.
	JumpIgnoreWhitespaces JumpMode = iota
	// JumpConsiderWhitespaces consumes a whole whitespace run as a token
	// of its own.
	JumpConsiderWhitespaces
	// JumpBlockOnWhitespace stops the jump dead when whitespace is next.
	JumpBlockOnWhitespace
)

// Word characters are alphanumerics plus underscore. The double quote
// is its own single-cell token. Everything else that is not ASCII
// whitespace counts as a symbol, and symbols run together.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}

func isSymbolRune(r rune) bool {
	return r != '"' && !isWordRune(r) && !isSpaceRune(r)
}

// jumpWordBackward scans left from col within line and returns the
// column where one word jump stops: at the start of the adjacent run of
// word or symbol characters, one cell past a quote, or per mode when
// whitespace is adjacent. It never leaves the row.
func jumpWordBackward(line []rune, col int, mode JumpMode) int {
	for col > 0 {
		switch {
		case isWordRune(line[col-1]):
			col--
			for col > 0 && isWordRune(line[col-1]) {
				col--
			}
			return col
		case line[col-1] == '"':
			return col - 1
		case !isSpaceRune(line[col-1]):
			col--
			for col > 0 && isSymbolRune(line[col-1]) {
				col--
			}
			return col
		default:
			switch mode {
			case JumpIgnoreWhitespaces:
				col--
			case JumpConsiderWhitespaces:
				col--
				for col > 0 && isSpaceRune(line[col-1]) {
					col--
				}
				return col
			case JumpBlockOnWhitespace:
				return col
			}
		}
	}
	return col
}

// jumpWordForward is the mirror of jumpWordBackward, scanning right and
// stopping one cell past the adjacent token.
func jumpWordForward(line []rune, col int, mode JumpMode) int {
	for col < len(line) {
		switch {
		case isWordRune(line[col]):
			col++
			for col < len(line) && isWordRune(line[col]) {
				col++
			}
			return col
		case line[col] == '"':
			return col + 1
		case !isSpaceRune(line[col]):
			col++
			for col < len(line) && isSymbolRune(line[col]) {
				col++
			}
			return col
		default:
			switch mode {
			case JumpIgnoreWhitespaces:
				col++
			case JumpConsiderWhitespaces:
				col++
				for col < len(line) && isSpaceRune(line[col]) {
					col++
				}
				return col
			case JumpBlockOnWhitespace:
				return col
			}
		}
	}
	return col
}
