package dtd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/pdebug/v3"
)

/*
 * parse an Element declaration.
 *
 * [45] elementdecl ::= '<!ELEMENT' S Name S contentspec S? '>'
 * [46] contentspec ::= 'EMPTY' | 'ANY' | Mixed | children
 *
 * The content model is stored as written, with whitespace removed.
 * Its structure is not checked beyond the balance of parentheses.
 */
func (ctx *parserCtx) parseElementDecl(body string) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	expanded, err := ctx.expandPEReferences(body, SubstituteMatchingParentheses)
	if err != nil {
		ctx.error(err)
		return
	}

	fields := strings.FieldsFunc(expanded, isBlankCh)
	if len(fields) == 0 {
		ctx.error(ErrElementNameRequired)
		return
	}

	name := fields[0]
	if !IsName(name) {
		ctx.error(ErrInvalidName{Kind: "element type name", Name: name})
		return
	}

	rest := fields[1:]
	if len(rest) == 0 {
		ctx.error(ErrContentSpecRequired)
		return
	}

	var spec string
	if len(rest) == 1 && (rest[0] == ContentAny || rest[0] == ContentEmpty) {
		spec = rest[0]
	} else {
		spec = strings.Join(rest, "")
		if !strings.HasPrefix(spec, "(") {
			ctx.error(ErrInvalidContentSpec)
			return
		}
		if !balancedParentheses(spec) {
			ctx.error(ErrUnbalancedParentheses)
			return
		}
	}

	if e, ok := ctx.dtd.LookupElement(name); ok && e.hasContentSpec {
		ctx.error(ErrElementRedeclared{Name: name})
		return
	}

	mixed := strings.HasPrefix(spec, "(#PCDATA")
	ctx.dtd.element(name).setContentSpec(spec, mixed)
	ctx.tlog.Debug("element declared", slog.String("name", name), slog.String("spec", spec))

	if s := ctx.sax; s != nil {
		ctx.notify("ElementDecl", s.ElementDecl(ctx.ctx, name, spec, mixed))
	}
}

func balancedParentheses(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

/*
 * parse a Notation declaration
 *
 * [82] NotationDecl ::= '<!NOTATION' S Name S (ExternalID |  PublicID) S? '>'
 * [83] PublicID ::= 'PUBLIC' S PubidLiteral
 *
 * The only accepted shapes, counted in tokens, are
 *
 *   name SYSTEM q sys q
 *   name PUBLIC q pub q
 *   name PUBLIC q pub q q sys q
 */
func (ctx *parserCtx) parseNotationDecl(body string) {
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
		ctx.error(ErrNotationNameRequired)
		return
	}

	name := tokens[0]
	if !IsName(name) {
		ctx.error(ErrInvalidName{Kind: "notation name", Name: name})
		return
	}

	if len(tokens) != 5 && len(tokens) != 8 {
		ctx.error(ErrMalformedNotationDecl)
		return
	}

	kind := tokens[1]
	if kind != "SYSTEM" && kind != "PUBLIC" {
		ctx.error(fmt.Errorf("%w: expected SYSTEM or PUBLIC, got '%s'", ErrMalformedNotationDecl, kind))
		return
	}

	first, next, err := quotedString(tokens, 2)
	if err != nil {
		ctx.error(err)
		return
	}

	n := &Notation{name: name}
	switch {
	case len(tokens) == 8:
		if kind != "PUBLIC" {
			ctx.error(ErrPublicIDForNonPublicNotation)
			return
		}
		sys, _, err := quotedString(tokens, next)
		if err != nil {
			ctx.error(err)
			return
		}
		n.publicID, n.hasPub = first, true
		n.systemID, n.hasSys = sys, true
	case kind == "PUBLIC":
		n.publicID, n.hasPub = first, true
	default:
		n.systemID, n.hasSys = first, true
	}

	if n.hasPub && !isPubidLiteral(n.publicID) {
		ctx.error(ErrInvalidPublicID)
		return
	}

	if err := ctx.dtd.notations.Set(name, n); err != nil {
		ctx.error(ErrNotationRedeclared{Name: name})
		return
	}
	ctx.tlog.Debug("notation declared", slog.String("name", name))

	if s := ctx.sax; s != nil {
		ctx.notify("NotationDecl", s.NotationDecl(ctx.ctx, name, n.publicID, n.systemID))
	}
}

/*
 * parse an Entity declaration
 *
 * [70] EntityDecl ::= GEDecl | PEDecl
 * [71] GEDecl ::= '<!ENTITY' S Name S EntityDef S? '>'
 * [72] PEDecl ::= '<!ENTITY' S '%' S Name S PEDef S? '>'
 * [73] EntityDef ::= EntityValue | (ExternalID NDataDecl?)
 * [74] PEDef ::= EntityValue | ExternalID
 * [75] ExternalID ::= 'SYSTEM' S SystemLiteral
 *                   | 'PUBLIC' S PubidLiteral S SystemLiteral
 * [76] NDataDecl ::= S 'NDATA' S Name
 *
 * Parameter entity references in the entity value are expanded now,
 * so the stored content never contains a reference.
 */
func (ctx *parserCtx) parseEntityDecl(body string) {
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

	var isParameter bool
	if len(tokens) > 0 && tokens[0] == "%" {
		isParameter = true
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		ctx.error(fmt.Errorf("%w: entity name required", ErrMalformedEntityDecl))
		return
	}

	name := tokens[0]
	if !IsName(name) {
		ctx.error(ErrInvalidName{Kind: "entity name", Name: name})
		return
	}

	ent := &Entity{name: name}
	rest := tokens[1:]
	switch {
	case len(rest) > 0 && isQuoteToken(rest[0]):
		value, next, err := quotedString(rest, 0)
		if err != nil {
			ctx.error(err)
			return
		}
		if next != len(rest) {
			ctx.error(fmt.Errorf("%w: unexpected '%s' after the entity value", ErrMalformedEntityDecl, rest[next]))
			return
		}

		value, err = ctx.expandPEReferences(value, SubstituteInEntityDeclaration)
		if err != nil {
			ctx.error(err)
			return
		}
		if strings.ContainsRune(value, '%') {
			ctx.error(ErrPercentInEntityValue)
			return
		}

		ent.content = value
		if isParameter {
			ent.etype = InternalParameterEntity
		} else {
			ent.etype = InternalGeneralEntity
		}
	case len(rest) > 0 && (rest[0] == "SYSTEM" || rest[0] == "PUBLIC"):
		i := 1
		if rest[0] == "PUBLIC" {
			pub, next, err := quotedString(rest, i)
			if err != nil {
				ctx.error(err)
				return
			}
			if !isPubidLiteral(pub) {
				ctx.error(ErrInvalidPublicID)
				return
			}
			ent.publicID, ent.hasPub = pub, true
			i = next
		}

		sys, next, err := quotedString(rest, i)
		if err != nil {
			ctx.error(err)
			return
		}
		ent.systemID, ent.hasSys = sys, true
		i = next

		if isParameter {
			ent.etype = ExternalParameterEntity
		} else {
			ent.etype = ExternalGeneralParsedEntity
		}

		if i < len(rest) {
			if rest[i] != "NDATA" || i+2 != len(rest) {
				ctx.error(fmt.Errorf("%w: unexpected '%s' after the external identifier", ErrMalformedEntityDecl, rest[i]))
				return
			}
			if isParameter {
				ctx.error(ErrNDATAOnParameterEntity)
				return
			}
			notation := rest[i+1]
			if !IsName(notation) {
				ctx.error(ErrInvalidName{Kind: "notation name", Name: notation})
				return
			}
			if !ctx.dtd.notations.Has(notation) {
				ctx.error(ErrUndeclaredNotation{Name: notation})
				return
			}
			ent.notation = notation
			ent.etype = ExternalGeneralUnparsedEntity
		}
	default:
		ctx.error(fmt.Errorf("%w: expected an entity value, SYSTEM or PUBLIC", ErrMalformedEntityDecl))
		return
	}

	table := ctx.dtd.entities
	if isParameter {
		table = ctx.dtd.pentities
	}
	// the first declaration is binding, later ones are ignored
	if err := table.Set(name, ent); err != nil {
		ctx.tlog.Debug("entity already declared", slog.String("name", name))
		return
	}
	ctx.tlog.Debug("entity declared", slog.String("name", name), slog.String("type", ent.etype.String()))

	if ent.etype == ExternalGeneralParsedEntity || ent.etype == ExternalParameterEntity {
		ctx.lookupExternalEntity(ent)
	}

	if s := ctx.sax; s != nil {
		if ent.etype == ExternalGeneralUnparsedEntity {
			ctx.notify("UnparsedEntityDecl", s.UnparsedEntityDecl(ctx.ctx, name, ent.publicID, ent.systemID, ent.notation))
		} else {
			ctx.notify("EntityDecl", s.EntityDecl(ctx.ctx, name, int(ent.etype), ent.publicID, ent.systemID, ent.content))
		}
	}
}

// parsePIBody handles the text between '<?' and '?>'. A text
// declaration (target "xml") is accepted only at the very start of the
// top level text, and is otherwise an error.
func (ctx *parserCtx) parsePIBody(body string, atStart bool) {
	target, data := body, ""
	if i := strings.IndexFunc(body, isBlankCh); i >= 0 {
		target = body[:i]
		data = strings.TrimLeftFunc(body[i:], isBlankCh)
	}

	if !IsName(target) {
		ctx.error(ErrInvalidName{Kind: "processing instruction target", Name: target})
		return
	}

	if strings.EqualFold(target, "xml") {
		if !atStart {
			ctx.error(ErrMisplacedXMLDecl)
		}
		return
	}

	ctx.dtd.pis = append(ctx.dtd.pis, &ProcessingInstruction{target: target, data: data})

	if s := ctx.sax; s != nil {
		ctx.notify("ProcessingInstruction", s.ProcessingInstruction(ctx.ctx, target, data))
	}
}
