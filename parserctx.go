package dtd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/dtd/internal/stack"
	"github.com/lestrrat-go/dtd/sax"
	"github.com/lestrrat-go/pdebug/v3"
)

// parserCtx holds the state of one Parse call. The scan position
// (text, offset, line and the conditional section depths) is saved
// and restored around the nested scan of a parameter entity reference.
type parserCtx struct {
	ctx          context.Context
	tlog         *slog.Logger
	dtd          *DTD
	sax          sax.Handler
	loadExternal bool
	baseDir      string

	text             string
	offset           int
	line             int
	includeDepth     int
	ignoreDepth      int
	inInternalSubset bool
	states           stack.Stack[scanState] // one per parameter entity being scanned
}

type scanState struct {
	text         string
	offset       int
	line         int
	includeDepth int
	ignoreDepth  int
}

func (ctx *parserCtx) init(c context.Context, p *Parser) {
	ctx.ctx = c
	ctx.tlog = getTraceLogFromContext(c)
	ctx.dtd = newDTD()
	ctx.sax = p.sax
	ctx.loadExternal = p.loadExternal
	ctx.baseDir = p.baseDir
	ctx.line = 1
}

func (ctx *parserCtx) release() {
	ctx.sax = nil
	ctx.ctx = nil
	ctx.text = ""
}

func (ctx *parserCtx) saveState() scanState {
	return scanState{
		text:         ctx.text,
		offset:       ctx.offset,
		line:         ctx.line,
		includeDepth: ctx.includeDepth,
		ignoreDepth:  ctx.ignoreDepth,
	}
}

func (ctx *parserCtx) restoreState(s scanState) {
	ctx.text = s.text
	ctx.offset = s.offset
	ctx.line = s.line
	ctx.includeDepth = s.includeDepth
	ctx.ignoreDepth = s.ignoreDepth
}

func (ctx *parserCtx) error(err error) {
	d := Diagnostic{Err: err, LineNumber: ctx.line}
	ctx.dtd.errors = append(ctx.dtd.errors, d)
	ctx.tlog.Debug("error", slog.Int("line", ctx.line), slog.String("error", err.Error()))
	if s := ctx.sax; s != nil {
		_ = s.Error(ctx.ctx, d.Error())
	}
}

func (ctx *parserCtx) warning(err error) {
	d := Diagnostic{Err: err, LineNumber: ctx.line}
	ctx.dtd.warnings = append(ctx.dtd.warnings, d)
	ctx.tlog.Debug("warning", slog.Int("line", ctx.line), slog.String("warning", err.Error()))
	if s := ctx.sax; s != nil {
		_ = s.Warning(ctx.ctx, d.Error())
	}
}

// notify records the failure of a declaration handler callback
func (ctx *parserCtx) notify(event string, err error) {
	if err == nil || errors.Is(err, sax.ErrHandlerUnspecified) {
		return
	}
	ctx.error(ErrHandler{Event: event, Err: err})
}

func (ctx *parserCtx) parseDocument(text, internalSubset string) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	// The internal subset is processed first: its declarations take
	// precedence over those of the external subset
	if internalSubset != "" {
		ctx.inInternalSubset = true
		ctx.line = 1
		ctx.parseGlobalSpace(internalSubset)
		ctx.inInternalSubset = false
	}

	ctx.line = 1
	ctx.parseGlobalSpace(text)
}

// normalizeText turns every line ending into '\n' and removes comments.
// Removed comments do not leave their newlines behind, so line numbers
// reported after a multi-line comment are shifted.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	for {
		i := strings.Index(s, "<!--")
		if i < 0 {
			break
		}
		j := strings.Index(s[i+4:], "-->")
		if j < 0 {
			// left alone; the scanner reports it
			break
		}
		b.WriteString(s[:i])
		s = s[i+4+j+3:]
	}
	b.WriteString(s)
	return b.String()
}

// parseGlobalSpace scans text at the level where markup declarations
// may appear, dispatching each construct it finds. It is re-entered
// for the replacement text of a free-standing parameter entity
// reference.
func (ctx *parserCtx) parseGlobalSpace(text string) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	ctx.text = normalizeText(text)
	ctx.offset = 0
	ctx.includeDepth = 0
	ctx.ignoreDepth = 0

	if !ctx.scanGlobalSpace() {
		return
	}

	if ctx.includeDepth > 0 || ctx.ignoreDepth > 0 {
		ctx.error(ErrConditionalSectionNotClosed)
	}
}

// scanGlobalSpace returns false if scanning had to stop because no
// further progress was possible.
func (ctx *parserCtx) scanGlobalSpace() bool {
	for {
		ctx.skipBlanks()
		if ctx.done() {
			return true
		}

		if ctx.ignoreDepth > 0 {
			switch {
			case ctx.hasPrefix("]]>"):
				ctx.ignoreDepth--
				ctx.advance(3)
			case ctx.hasPrefix("<!["):
				ctx.ignoreDepth++
				ctx.advance(3)
			default:
				ctx.advance(1)
			}
			continue
		}

		switch {
		case ctx.hasPrefix("]]>"):
			ctx.advance(3)
			if ctx.includeDepth > 0 {
				ctx.includeDepth--
			} else {
				ctx.error(ErrUnmatchedSectionClose)
			}
		case ctx.hasPrefix("<!["):
			if !ctx.parseConditionalSectionStart() {
				return false
			}
		case ctx.hasPrefix("%"):
			if !ctx.parsePEReference() {
				return false
			}
		case ctx.hasPrefix("<!--"):
			ctx.error(ErrNestedComment)
			return false
		case ctx.hasPrefix("<!"):
			if !ctx.parseMarkupDecl() {
				return false
			}
		case ctx.hasPrefix("<?"):
			if !ctx.parsePI() {
				return false
			}
		case ctx.hasPrefix("<"):
			ctx.error(ErrIllegalLt)
			return false
		default:
			r, _ := utf8.DecodeRuneInString(ctx.text[ctx.offset:])
			ctx.error(fmt.Errorf("unexpected character '%c': %w", r, ErrUnexpectedCharacter))
			return false
		}
	}
}

func (ctx *parserCtx) done() bool {
	return ctx.offset >= len(ctx.text)
}

func (ctx *parserCtx) hasPrefix(s string) bool {
	return strings.HasPrefix(ctx.text[ctx.offset:], s)
}

// advance moves the cursor n bytes forward, counting the newlines it
// passes over
func (ctx *parserCtx) advance(n int) {
	end := ctx.offset + n
	if end > len(ctx.text) {
		end = len(ctx.text)
	}
	ctx.line += strings.Count(ctx.text[ctx.offset:end], "\n")
	ctx.offset = end
}

func (ctx *parserCtx) skipBlanks() {
	i := ctx.offset
	for i < len(ctx.text) && isBlankByte(ctx.text[i]) {
		i++
	}
	if i > ctx.offset {
		ctx.advance(i - ctx.offset)
	}
}

/*
 * parse the start of a conditional section, up to and including the '['
 *
 * [61] conditionalSect ::= includeSect | ignoreSect
 * [62] includeSect ::= '<![' S? 'INCLUDE' S? '[' extSubsetDecl ']]>'
 * [63] ignoreSect ::= '<![' S? 'IGNORE' S? '[' ignoreSectContents* ']]>'
 */
func (ctx *parserCtx) parseConditionalSectionStart() bool {
	start := ctx.line
	ctx.advance(3)

	idx := strings.IndexByte(ctx.text[ctx.offset:], '[')
	if idx < 0 {
		ctx.error(ErrConditionalKeywordNotClosed)
		return false
	}
	keyword := ctx.text[ctx.offset : ctx.offset+idx]
	ctx.advance(idx + 1)

	after := ctx.line
	ctx.line = start
	defer func() { ctx.line = after }()

	if ctx.inInternalSubset {
		ctx.error(ErrConditionalInInternalSubset)
	}

	expanded, err := ctx.expandPEReferences(keyword, SubstituteIgnoreQuotedText)
	if err != nil {
		ctx.error(err)
		return true
	}

	switch kw := strings.TrimSpace(expanded); kw {
	case "INCLUDE":
		ctx.includeDepth++
	case "IGNORE":
		ctx.ignoreDepth++
	default:
		ctx.error(ErrInvalidConditionalKeyword{Keyword: kw})
	}
	return true
}

/*
 * parse a parameter entity reference found where a markup declaration
 * may occur. The replacement text may itself hold complete
 * declarations, so it is scanned with parseGlobalSpace.
 *
 * [69] PEReference ::= '%' Name ';'
 */
func (ctx *parserCtx) parsePEReference() bool {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	start := ctx.line
	i := ctx.offset + 1
	for i < len(ctx.text) {
		r, w := utf8.DecodeRuneInString(ctx.text[i:])
		if !isNameChar(r) {
			break
		}
		i += w
	}
	name := ctx.text[ctx.offset+1 : i]
	if i >= len(ctx.text) || ctx.text[i] != ';' || !IsName(name) {
		ctx.error(ErrInvalidPEReference)
		return false
	}
	ctx.advance(i + 1 - ctx.offset)

	ent, ok := ctx.dtd.LookupParameterEntity(name)
	if !ok {
		ctx.withLine(start, func() { ctx.error(ErrUndefinedParameterEntity{Name: name}) })
		return true
	}

	if ent.IsExternal() {
		sys, _ := ent.SystemID()
		ctx.withLine(start, func() {
			ctx.warning(WarnExternalEntity{Name: name, Path: sys, Reason: "was referenced but external entities are not parsed"})
		})
		return true
	}

	ctx.tlog.Debug("parsing parameter entity", slog.String("name", name), slog.Int("line", start))

	nerrors := len(ctx.dtd.errors)
	ctx.states.Push(ctx.saveState())
	ctx.line = start
	ctx.parseGlobalSpace(ent.content)
	saved, _ := ctx.states.Peek()
	ctx.states.Pop()
	ctx.restoreState(saved)

	if len(ctx.dtd.errors) > nerrors {
		ctx.withLine(start, func() {
			ctx.warning(fmt.Errorf("%%%s;: %w", name, WarnUnreliableLineNumbers))
		})
	}
	return true
}

// withLine runs fn with the line number temporarily set to line
func (ctx *parserCtx) withLine(line int, fn func()) {
	saved := ctx.line
	ctx.line = line
	fn()
	ctx.line = saved
}

// declEnd returns the offset of the '>' closing the declaration that
// starts at the cursor. '>' inside quoted strings does not count.
func (ctx *parserCtx) declEnd() (int, bool) {
	var quote byte
	for i := ctx.offset + 2; i < len(ctx.text); i++ {
		c := ctx.text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i, true
		}
	}
	return 0, false
}

/*
 * parse Markup declarations
 *
 * [29] markupdecl ::= elementdecl | AttlistDecl | EntityDecl |
 *                     NotationDecl | PI | Comment
 */
func (ctx *parserCtx) parseMarkupDecl() bool {
	start := ctx.line
	end, ok := ctx.declEnd()
	if !ok {
		ctx.error(ErrDeclarationNotClosed)
		return false
	}

	// strip "<!" and ">"
	body := ctx.text[ctx.offset+2 : end]
	ctx.advance(end + 1 - ctx.offset)

	ctx.withLine(start, func() {
		ctx.tlog.Debug("markup declaration", slog.Int("line", start))
		switch {
		case hasKeyword(body, "ELEMENT"):
			ctx.parseElementDecl(body[len("ELEMENT"):])
		case hasKeyword(body, "ATTLIST"):
			ctx.parseAttlistDecl(body[len("ATTLIST"):])
		case hasKeyword(body, "ENTITY"):
			ctx.parseEntityDecl(body[len("ENTITY"):])
		case hasKeyword(body, "NOTATION"):
			ctx.parseNotationDecl(body[len("NOTATION"):])
		default:
			kw := body
			if i := strings.IndexFunc(kw, isBlankCh); i >= 0 {
				kw = kw[:i]
			}
			ctx.error(fmt.Errorf("%w '<!%s'", ErrUnknownDeclaration, kw))
		}
	})
	return true
}

// hasKeyword checks that body starts with kw followed by a blank or a
// parameter entity reference
func hasKeyword(body, kw string) bool {
	if !strings.HasPrefix(body, kw) || len(body) == len(kw) {
		return false
	}
	c := body[len(kw)]
	return isBlankByte(c) || c == '%'
}

/*
 * parse a processing instruction
 *
 * [16] PI ::= '<?' PITarget (S (Char* - (Char* '?>' Char*)))? '?>'
 */
func (ctx *parserCtx) parsePI() bool {
	start := ctx.line
	atStart := ctx.offset == 0 && ctx.states.Len() == 0 && !ctx.inInternalSubset

	idx := strings.Index(ctx.text[ctx.offset+2:], "?>")
	if idx < 0 {
		ctx.error(ErrPINotClosed)
		return false
	}
	body := ctx.text[ctx.offset+2 : ctx.offset+2+idx]
	ctx.advance(idx + 4)

	ctx.withLine(start, func() {
		ctx.parsePIBody(body, atStart)
	})
	return true
}
