package dtd

import (
	"fmt"
	"log/slog"

	"github.com/lestrrat-go/dtd/sax"
	"github.com/lestrrat-go/pdebug/v3"
)

// attlistState is the position of the ATTLIST parser within one
// attribute definition
type attlistState int

const (
	attlistNeedName attlistState = iota
	attlistNeedType
	attlistAfterNotation
	attlistNeedEnumValue
	attlistNeedEnumSeparator
	attlistNeedDefault
)

func (s attlistState) String() string {
	switch s {
	case attlistNeedName:
		return "NeedName"
	case attlistNeedType:
		return "NeedType"
	case attlistAfterNotation:
		return "AfterNotation"
	case attlistNeedEnumValue:
		return "NeedEnumValue"
	case attlistNeedEnumSeparator:
		return "NeedEnumSeparator"
	case attlistNeedDefault:
		return "NeedDefault"
	}
	return "Unknown"
}

/*
 * parse an Attribute list declaration
 *
 * [52] AttlistDecl ::= '<!ATTLIST' S Name AttDef* S? '>'
 * [53] AttDef ::= S Name S AttType S DefaultDecl
 * [54] AttType ::= StringType | TokenizedType | EnumeratedType
 * [57] EnumeratedType ::= NotationType | Enumeration
 * [58] NotationType ::= 'NOTATION' S '(' S? Name (S? '|' S? Name)* S? ')'
 * [59] Enumeration ::= '(' S? Nmtoken (S? '|' S? Nmtoken)* S? ')'
 * [60] DefaultDecl ::= '#REQUIRED' | '#IMPLIED' | (('#FIXED' S)? AttValue)
 *
 * Nothing is recorded unless the whole declaration is valid. When an
 * attribute is defined more than once for an element, the first
 * definition is binding.
 */
func (ctx *parserCtx) parseAttlistDecl(body string) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	expanded, err := ctx.expandPEReferences(body, SubstituteIgnoreQuotedText)
	if err != nil {
		ctx.error(err)
		return
	}

	tokens, err := tokenize(expanded)
	if err != nil {
		ctx.error(err)
		return
	}

	if len(tokens) == 0 {
		ctx.error(ErrAttlistNameRequired)
		return
	}

	elemName := tokens[0]
	if !IsName(elemName) {
		ctx.error(ErrInvalidName{Kind: "element type name", Name: elemName})
		return
	}

	attrs, err := parseAttributeDefinitions(tokens[1:])
	if err != nil {
		ctx.error(err)
		return
	}

	elem := ctx.dtd.element(elemName)
	for _, attr := range attrs {
		if err := elem.attributes.Set(attr.name, attr); err != nil {
			ctx.tlog.Debug("attribute already declared",
				slog.String("element", elemName),
				slog.String("attribute", attr.name),
			)
			continue
		}

		if s := ctx.sax; s != nil {
			ctx.notify("AttributeDecl", s.AttributeDecl(ctx.ctx, elemName, attr.name, int(attr.atype), int(attr.def), attr.defaultValue, sax.Enumeration(attr.Enumeration())))
		}
	}
}

// parseAttributeDefinitions runs the attribute definition state machine
// over the tokens following the element name
func parseAttributeDefinitions(tokens []string) ([]*Attribute, error) {
	var attrs []*Attribute
	var cur *Attribute

	state := attlistNeedName
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch state {
		case attlistNeedName:
			if !IsName(tok) {
				return nil, ErrInvalidName{Kind: "attribute name", Name: tok}
			}
			cur = &Attribute{name: tok}
			state = attlistNeedType
		case attlistNeedType:
			if t, ok := attrTypeNames[tok]; ok {
				cur.atype = t
				state = attlistNeedDefault
				continue
			}
			switch tok {
			case "(":
				cur.atype = AttrEnumeration
				cur.tree = Enumeration{}
				state = attlistNeedEnumValue
			case "NOTATION":
				cur.atype = AttrNotation
				state = attlistAfterNotation
			default:
				return nil, ErrUnknownAttributeType{Type: tok}
			}
		case attlistAfterNotation:
			if tok != "(" {
				return nil, ErrMissingNotationEnumeration
			}
			cur.tree = Enumeration{}
			state = attlistNeedEnumValue
		case attlistNeedEnumValue:
			if !IsNmToken(tok) {
				return nil, ErrInvalidNmToken{Token: tok}
			}
			cur.tree = append(cur.tree, tok)
			state = attlistNeedEnumSeparator
		case attlistNeedEnumSeparator:
			switch tok {
			case "|":
				state = attlistNeedEnumValue
			case ")":
				state = attlistNeedDefault
			default:
				return nil, ErrEnumerationSeparator
			}
		case attlistNeedDefault:
			switch {
			case tok == "#REQUIRED":
				cur.def = AttrDefaultRequired
			case tok == "#IMPLIED":
				cur.def = AttrDefaultImplied
			case tok == "#FIXED":
				v, next, err := quotedString(tokens, i+1)
				if err != nil {
					return nil, fmt.Errorf("%w: #FIXED must be followed by a quoted value", ErrInvalidDefaultDecl)
				}
				cur.def = AttrDefaultFixed
				cur.defaultValue = v
				i = next - 1
			case isQuoteToken(tok):
				v, next, err := quotedString(tokens, i)
				if err != nil {
					return nil, err
				}
				cur.def = AttrDefaultValue
				cur.defaultValue = v
				i = next - 1
			default:
				return nil, fmt.Errorf("%w '%s'", ErrInvalidDefaultDecl, tok)
			}

			if err := checkAttributeDefault(cur); err != nil {
				return nil, err
			}
			attrs = append(attrs, cur)
			cur = nil
			state = attlistNeedName
		}
	}

	if state != attlistNeedName {
		return nil, fmt.Errorf("%w: '%s' stopped at %s", ErrAttributeNotCompleted, cur.name, state)
	}
	return attrs, nil
}

// checkAttributeDefault enforces the constraints that tie the default
// declaration to the attribute type
//
//	[VC: ID Attribute Default]
//	[VC: Attribute Default Value Syntactically Correct]
func checkAttributeDefault(attr *Attribute) error {
	hasValue := attr.def == AttrDefaultValue || attr.def == AttrDefaultFixed
	if !hasValue {
		return nil
	}

	switch attr.atype {
	case AttrID:
		return ErrIDAttributeDefault
	case AttrEnumeration, AttrNotation:
		if !attr.tree.Contains(attr.defaultValue) {
			return fmt.Errorf("%w: '%s'", ErrDefaultNotInEnumeration, attr.defaultValue)
		}
	}
	return nil
}
