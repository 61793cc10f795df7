package sax

// Context is the opaque value passed as the first argument to every
// callback. The dtd parser passes its context.Context.
type Context interface{}

// Enumeration is the list of values of an enumerated or NOTATION
// attribute type
type Enumeration []string

// Handler receives declaration events while a DTD is being parsed.
// Each callback is invoked after the declaration has been recorded.
//
// Integer arguments are the numeric values of the dtd package enums
// (dtd.AttributeType, dtd.AttributeDefault and dtd.EntityType).
type Handler interface {
	AttributeDecl(ctx Context, elem string, name string, typ int, def int, defaultValue string, tree Enumeration) error
	ElementDecl(ctx Context, name string, contentSpec string, mixed bool) error
	EntityDecl(ctx Context, name string, typ int, publicID string, systemID string, content string) error
	Error(ctx Context, message string) error
	NotationDecl(ctx Context, name string, publicID string, systemID string) error
	ProcessingInstruction(ctx Context, target string, data string) error
	UnparsedEntityDecl(ctx Context, name string, publicID string, systemID string, notationName string) error
	Warning(ctx Context, message string) error
}
