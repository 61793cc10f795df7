package dtd

import (
	"errors"
	"fmt"
)

var (
	ErrAttlistNameRequired          = errors.New("element type name required in ATTLIST declaration")
	ErrAttributeNotCompleted        = errors.New("attribute definition was not completed")
	ErrConditionalKeywordNotClosed  = errors.New("conditional section keyword is not followed by '['")
	ErrConditionalSectionNotClosed  = errors.New("conditional section was not closed")
	ErrConditionalInInternalSubset  = errors.New("conditional sections are not allowed in the internal subset")
	ErrContentSpecRequired          = errors.New("content specification required in ELEMENT declaration")
	ErrDeclarationNotClosed         = errors.New("markup declaration is not terminated by '>'")
	ErrDefaultNotInEnumeration      = errors.New("default value must be one of the enumerated values")
	ErrElementNameRequired          = errors.New("element type name required in ELEMENT declaration")
	ErrEnumerationSeparator         = errors.New("values must be separated by '|'")
	ErrIDAttributeDefault           = errors.New("ID attributes must be declared #IMPLIED or #REQUIRED")
	ErrIllegalCloseParen            = errors.New("the ')' character is illegal here")
	ErrIllegalLt                    = errors.New("the '<' character must start a declaration, processing instruction or conditional section")
	ErrInvalidContentSpec           = errors.New("content specification must be EMPTY, ANY or a parenthesized content model")
	ErrInvalidDefaultDecl           = errors.New("invalid default declaration")
	ErrInvalidPEReference           = errors.New("'%' must be followed by a parameter entity name and ';'")
	ErrInvalidPublicID              = errors.New("public identifier contains characters that are not allowed")
	ErrMalformedEntityDecl          = errors.New("malformed ENTITY declaration")
	ErrMalformedNotationDecl        = errors.New("malformed NOTATION declaration")
	ErrMisplacedQuote               = errors.New("a quote must be preceded by whitespace")
	ErrMisplacedXMLDecl             = errors.New("XML declaration allowed only at the start of the DTD")
	ErrMissingNotationEnumeration   = errors.New("missing notations enumeration")
	ErrNDATAOnParameterEntity       = errors.New("NDATA is not allowed on parameter entities")
	ErrNestedComment                = errors.New("comment is not terminated or is illegally nested")
	ErrNotationNameRequired         = errors.New("notation name required in NOTATION declaration")
	ErrPercentInEntityValue         = errors.New("entities cannot contain '%' unless part of a reference")
	ErrPINotClosed                  = errors.New("processing instruction is not terminated by '?>'")
	ErrPublicIDForNonPublicNotation = errors.New("a public identifier was supplied for a non-PUBLIC notation")
	ErrQuoteMismatch                = errors.New("quoted string must start and end with the same quote character")
	ErrUnbalancedParentheses        = errors.New("unbalanced parentheses in content model")
	ErrUnexpectedCharacter          = errors.New("only markup declarations, processing instructions, conditional sections and parameter entity references are allowed here")
	ErrUnmatchedSectionClose        = errors.New("']]>' does not close any conditional section")
	ErrUnknownDeclaration           = errors.New("unknown markup declaration")
	WarnUnreliableLineNumbers       = errors.New("errors were reported inside a parameter entity; their line numbers may be unreliable")
)

// ErrUndefinedParameterEntity is returned when a reference names a
// parameter entity that has not been declared (yet)
type ErrUndefinedParameterEntity struct {
	Name string
}

func (e ErrUndefinedParameterEntity) Error() string {
	return "parameter entity '" + e.Name + "' is used, but not defined"
}

type ErrInvalidName struct {
	Kind string
	Name string
}

func (e ErrInvalidName) Error() string {
	return "'" + e.Name + "' is not a valid " + e.Kind
}

type ErrInvalidNmToken struct {
	Token string
}

func (e ErrInvalidNmToken) Error() string {
	return "'" + e.Token + "' is not a valid name token"
}

type ErrUnknownAttributeType struct {
	Type string
}

func (e ErrUnknownAttributeType) Error() string {
	return "declared type does not exist: '" + e.Type + "'"
}

type ErrElementRedeclared struct {
	Name string
}

func (e ErrElementRedeclared) Error() string {
	return "element '" + e.Name + "' is declared more than once"
}

type ErrNotationRedeclared struct {
	Name string
}

func (e ErrNotationRedeclared) Error() string {
	return "notation '" + e.Name + "' is declared more than once"
}

type ErrUndeclaredNotation struct {
	Name string
}

func (e ErrUndeclaredNotation) Error() string {
	return "notation '" + e.Name + "' has not been declared"
}

type ErrInvalidConditionalKeyword struct {
	Keyword string
}

func (e ErrInvalidConditionalKeyword) Error() string {
	return "conditional section keyword must be INCLUDE or IGNORE, got '" + e.Keyword + "'"
}

// ErrHandler wraps an error returned by a sax.Handler callback
type ErrHandler struct {
	Event string
	Err   error
}

func (e ErrHandler) Error() string {
	return "declaration handler " + e.Event + " failed: " + e.Err.Error()
}

func (e ErrHandler) Unwrap() error {
	return e.Err
}

// WarnExternalEntity describes what happened to an external entity
// that was referenced or declared. Its content is never parsed.
type WarnExternalEntity struct {
	Name   string
	Path   string
	Reason string
}

func (e WarnExternalEntity) Error() string {
	if e.Path == "" {
		return "external entity '" + e.Name + "' " + e.Reason
	}
	return "external entity '" + e.Name + "' (" + e.Path + ") " + e.Reason
}

// Diagnostic is a single error or warning, along with the 1-based line
// number where it was found
type Diagnostic struct {
	Err        error
	LineNumber int
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s (line %d)", d.Err, d.LineNumber)
}

func (d Diagnostic) String() string {
	return d.Error()
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}
