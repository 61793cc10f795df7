package dtd

import (
	"github.com/lestrrat-go/dtd/sax"
	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identBaseDir struct{}
type identExternalEntityLoading struct{}
type identHandler struct{}
type identInternalSubset struct{}

// ParseOption is an option that can be passed to Parse and NewParser
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithInternalSubset specifies the internal subset of the document
// type declaration. It is parsed before the main text, because its
// declarations take precedence.
func WithInternalSubset(v string) ParseOption {
	return &parseOption{option.New(identInternalSubset{}, v)}
}

// WithExternalEntityLoading enables looking up external entities on
// local storage. Even when enabled, external content is never parsed:
// only a warning describing the outcome is recorded.
func WithExternalEntityLoading(v bool) ParseOption {
	return &parseOption{option.New(identExternalEntityLoading{}, v)}
}

// WithBaseDir specifies the directory that relative system identifiers
// are resolved against when external entity loading is enabled
func WithBaseDir(v string) ParseOption {
	return &parseOption{option.New(identBaseDir{}, v)}
}

// WithHandler specifies a handler that receives declaration events
func WithHandler(v sax.Handler) ParseOption {
	return &parseOption{option.New(identHandler{}, v)}
}
