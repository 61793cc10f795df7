package dtd

import "strings"

// tokenize splits the interior of a declaration into tokens.
//
// Tokens are separated by blanks. A quoted string produces three tokens:
// the opening quote, the (possibly empty) text between the quotes, and
// the closing quote. Inside parentheses '(', '|' and ')' are tokens of
// their own, and two bare words must be separated by a '|'.
//
// An unterminated quote or parenthesis at the end of the input is not an
// error here; the pending text is flushed and the caller decides.
func tokenize(s string) ([]string, error) {
	var tokens []string
	var word strings.Builder
	var hasWord bool
	var quote rune
	var inParen bool
	var wordInGroup bool // last token emitted inside parens was a bare word
	var prev rune = -1   // -1 marks the start of input

	flush := func() error {
		if !hasWord {
			return nil
		}
		if inParen {
			if wordInGroup {
				return ErrEnumerationSeparator
			}
			wordInGroup = true
		}
		tokens = append(tokens, word.String())
		word.Reset()
		hasWord = false
		return nil
	}

	for _, c := range s {
		switch {
		case quote != 0:
			if c == quote {
				tokens = append(tokens, word.String(), string(c))
				word.Reset()
				quote = 0
			} else {
				word.WriteRune(c)
			}
		case c == '"' || c == '\'':
			if prev != -1 && !isBlankCh(prev) {
				return nil, ErrMisplacedQuote
			}
			tokens = append(tokens, string(c))
			quote = c
		case isBlankCh(c):
			if err := flush(); err != nil {
				return nil, err
			}
		case c == '(':
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, "(")
			inParen = true
			wordInGroup = false
		case c == ')':
			if !inParen {
				return nil, ErrIllegalCloseParen
			}
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, ")")
			inParen = false
			wordInGroup = false
		case c == '|' && inParen:
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, "|")
			wordInGroup = false
		default:
			word.WriteRune(c)
			hasWord = true
		}
		prev = c
	}

	if quote != 0 {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
		}
		return tokens, nil
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func isQuoteToken(s string) bool {
	return s == `"` || s == `'`
}

// quotedString reads a `q value q` triple starting at tokens[i], and
// returns the value along with the index of the token following it.
func quotedString(tokens []string, i int) (string, int, error) {
	if i+2 >= len(tokens) {
		return "", i, ErrQuoteMismatch
	}
	if !isQuoteToken(tokens[i]) || tokens[i] != tokens[i+2] {
		return "", i, ErrQuoteMismatch
	}
	return tokens[i+1], i + 3, nil
}
