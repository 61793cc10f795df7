package sax

import "errors"

// ErrHandlerUnspecified is returned when there is no callback
// registered for that particular event. This is not a fatal error
// per se, and the parser ignores it.
var ErrHandlerUnspecified = errors.New("handler unspecified")

// AttributeDeclFunc defines the function type for SAX2.AttributeDeclHandler
type AttributeDeclFunc func(ctx Context, elem string, name string, typ int, def int, defaultValue string, tree Enumeration) error

// ElementDeclFunc defines the function type for SAX2.ElementDeclHandler
type ElementDeclFunc func(ctx Context, name string, contentSpec string, mixed bool) error

// EntityDeclFunc defines the function type for SAX2.EntityDeclHandler
type EntityDeclFunc func(ctx Context, name string, typ int, publicID string, systemID string, content string) error

// ErrorFunc defines the function type for SAX2.ErrorHandler
type ErrorFunc func(ctx Context, message string) error

// NotationDeclFunc defines the function type for SAX2.NotationDeclHandler
type NotationDeclFunc func(ctx Context, name string, publicID string, systemID string) error

// ProcessingInstructionFunc defines the function type for SAX2.ProcessingInstructionHandler
type ProcessingInstructionFunc func(ctx Context, target string, data string) error

// UnparsedEntityDeclFunc defines the function type for SAX2.UnparsedEntityDeclHandler
type UnparsedEntityDeclFunc func(ctx Context, name string, publicID string, systemID string, notationName string) error

// WarningFunc defines the function type for SAX2.WarningHandler
type WarningFunc func(ctx Context, message string) error
