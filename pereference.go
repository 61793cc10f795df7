package dtd

import (
	"log/slog"
	"unicode/utf8"
)

// SubstitutionPolicy controls how parameter entity references are
// replaced inside a piece of declaration text
type SubstitutionPolicy int

const (
	// SubstituteIgnoreQuotedText leaves references inside quoted strings
	// alone, and surrounds each replacement with a single space.
	SubstituteIgnoreQuotedText SubstitutionPolicy = iota
	// SubstituteMatchingParentheses behaves like
	// SubstituteIgnoreQuotedText. It is used for content models.
	SubstituteMatchingParentheses
	// SubstituteInEntityDeclaration replaces every reference, quoted or
	// not, with the bare replacement text.
	SubstituteInEntityDeclaration
)

func (p SubstitutionPolicy) String() string {
	switch p {
	case SubstituteIgnoreQuotedText:
		return "IgnoreQuotedText"
	case SubstituteMatchingParentheses:
		return "MatchingParentheses"
	case SubstituteInEntityDeclaration:
		return "InEntityDeclaration"
	}
	return "Unknown"
}

func (p SubstitutionPolicy) quoteAware() bool {
	return p != SubstituteInEntityDeclaration
}

func (p SubstitutionPolicy) spaced() bool {
	return p != SubstituteInEntityDeclaration
}

// findPEReference locates the first well formed %name; in text.
// A '%' that does not start a well formed reference is skipped over.
func findPEReference(text string, quoteAware bool) (start, end int, name string, found bool) {
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quoteAware {
			if quote != 0 {
				if c == quote {
					quote = 0
				}
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				continue
			}
		}
		if c != '%' {
			continue
		}

		j := i + 1
		for j < len(text) {
			r, w := utf8.DecodeRuneInString(text[j:])
			if !isNameChar(r) {
				break
			}
			j += w
		}
		if j >= len(text) || text[j] != ';' || !IsName(text[i+1:j]) {
			continue
		}
		return i, j + 1, text[i+1 : j], true
	}
	return 0, 0, "", false
}

// expandPEReferences replaces parameter entity references in text
// according to policy, rescanning from the beginning after every
// replacement until no reference remains. Replacement texts never
// contain references themselves, so this always terminates.
func (ctx *parserCtx) expandPEReferences(text string, policy SubstitutionPolicy) (string, error) {
	for {
		start, end, name, ok := findPEReference(text, policy.quoteAware())
		if !ok {
			return text, nil
		}

		ent, ok := ctx.dtd.LookupParameterEntity(name)
		if !ok {
			return text, ErrUndefinedParameterEntity{Name: name}
		}
		if ent.IsExternal() {
			sys, _ := ent.SystemID()
			ctx.warning(WarnExternalEntity{Name: name, Path: sys, Reason: "was referenced but external entities are not parsed"})
		}

		ctx.tlog.Debug("expanding parameter entity",
			slog.String("name", name),
			slog.String("policy", policy.String()),
		)

		replacement := ent.content
		if policy.spaced() {
			replacement = " " + replacement + " "
		}
		text = text[:start] + replacement + text[end:]
	}
}
