package dtd

import (
	"context"

	"github.com/lestrrat-go/dtd/sax"
)

// Parser parses DTDs. A Parser holds no per-parse state, so one value
// may be used by multiple goroutines at once.
type Parser struct {
	internalSubset string
	loadExternal   bool
	baseDir        string
	sax            sax.Handler
}

// Parse parses text as the external subset of a DTD. See Parser.Parse
func Parse(ctx context.Context, text string, options ...ParseOption) *DTD {
	return NewParser().Parse(ctx, text, options...)
}

func NewParser(options ...ParseOption) *Parser {
	p := &Parser{}
	p.apply(options)
	return p
}

func (p *Parser) apply(options []ParseOption) {
	for _, o := range options {
		switch o.Ident() {
		case identInternalSubset{}:
			p.internalSubset = o.Value().(string)
		case identExternalEntityLoading{}:
			p.loadExternal = o.Value().(bool)
		case identBaseDir{}:
			p.baseDir = o.Value().(string)
		case identHandler{}:
			p.sax = o.Value().(sax.Handler)
		}
	}
}

// Parse parses text, and returns the resulting DTD. Parse never fails:
// problems found in the text are recorded as errors and warnings on
// the returned DTD, and parsing continues where possible. Options
// given here override those given to NewParser for this call only.
func (p *Parser) Parse(ctx context.Context, text string, options ...ParseOption) *DTD {
	cfg := *p
	cfg.apply(options)

	pctx := &parserCtx{}
	pctx.init(ctx, &cfg)
	defer pctx.release()

	pctx.parseDocument(text, cfg.internalSubset)
	return pctx.dtd
}
