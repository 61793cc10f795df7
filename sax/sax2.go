package sax

// SAX2 is the callback based Handler. Events without a registered
// callback return ErrHandlerUnspecified.
type SAX2 struct {
	AttributeDeclHandler         AttributeDeclFunc
	ElementDeclHandler           ElementDeclFunc
	EntityDeclHandler            EntityDeclFunc
	ErrorHandler                 ErrorFunc
	NotationDeclHandler          NotationDeclFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	UnparsedEntityDeclHandler    UnparsedEntityDeclFunc
	WarningHandler               WarningFunc
}

// New creates a new instance of SAX2. All callbacks are
// uninitialized.
func New() *SAX2 {
	return &SAX2{}
}

func (s SAX2) AttributeDecl(ctx Context, elem string, name string, typ int, def int, defaultValue string, tree Enumeration) error {
	if h := s.AttributeDeclHandler; h != nil {
		return h(ctx, elem, name, typ, def, defaultValue, tree)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) ElementDecl(ctx Context, name string, contentSpec string, mixed bool) error {
	if h := s.ElementDeclHandler; h != nil {
		return h(ctx, name, contentSpec, mixed)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) EntityDecl(ctx Context, name string, typ int, publicID string, systemID string, content string) error {
	if h := s.EntityDeclHandler; h != nil {
		return h(ctx, name, typ, publicID, systemID, content)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) Error(ctx Context, message string) error {
	if h := s.ErrorHandler; h != nil {
		return h(ctx, message)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) NotationDecl(ctx Context, name string, publicID string, systemID string) error {
	if h := s.NotationDeclHandler; h != nil {
		return h(ctx, name, publicID, systemID)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) ProcessingInstruction(ctx Context, target string, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) UnparsedEntityDecl(ctx Context, name string, publicID string, systemID string, notationName string) error {
	if h := s.UnparsedEntityDeclHandler; h != nil {
		return h(ctx, name, publicID, systemID, notationName)
	}
	return ErrHandlerUnspecified
}

func (s SAX2) Warning(ctx Context, message string) error {
	if h := s.WarningHandler; h != nil {
		return h(ctx, message)
	}
	return ErrHandlerUnspecified
}
