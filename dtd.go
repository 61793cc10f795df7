package dtd

import (
	"github.com/lestrrat-go/dtd/internal/orderedmap"
)

const (
	// ContentAny is the content specification of <!ELEMENT x ANY>
	ContentAny = "ANY"
	// ContentEmpty is the content specification of <!ELEMENT x EMPTY>
	ContentEmpty = "EMPTY"
	// ContentNotGiven is reported by Element.ContentSpecification when
	// the element was only mentioned by an ATTLIST declaration
	ContentNotGiven = "not given"
)

// DTD is the result of parsing a document type definition. It is
// populated by a single call to Parse and must be treated as read-only
// afterwards.
type DTD struct {
	elements  *orderedmap.Map[string, *Element]
	entities  *orderedmap.Map[string, *Entity]
	pentities *orderedmap.Map[string, *Entity]
	notations *orderedmap.Map[string, *Notation]
	pis       []*ProcessingInstruction
	errors    []Diagnostic
	warnings  []Diagnostic
}

func newDTD() *DTD {
	return &DTD{
		elements:  orderedmap.New[string, *Element](),
		entities:  orderedmap.New[string, *Entity](),
		pentities: orderedmap.New[string, *Entity](),
		notations: orderedmap.New[string, *Notation](),
	}
}

// IsWellFormedAndValid returns true if no errors were reported.
// Warnings do not count.
func (dtd *DTD) IsWellFormedAndValid() bool {
	return len(dtd.errors) == 0
}

func (dtd *DTD) Errors() []Diagnostic {
	return append([]Diagnostic(nil), dtd.errors...)
}

func (dtd *DTD) Warnings() []Diagnostic {
	return append([]Diagnostic(nil), dtd.warnings...)
}

func (dtd *DTD) LookupElement(name string) (*Element, bool) {
	return dtd.elements.Get(name)
}

// Elements returns the elements in the order they were first mentioned
func (dtd *DTD) Elements() []*Element {
	return dtd.elements.Values()
}

// LookupEntity returns the general entity declared as name
func (dtd *DTD) LookupEntity(name string) (*Entity, bool) {
	return dtd.entities.Get(name)
}

func (dtd *DTD) Entities() []*Entity {
	return dtd.entities.Values()
}

func (dtd *DTD) LookupParameterEntity(name string) (*Entity, bool) {
	return dtd.pentities.Get(name)
}

func (dtd *DTD) ParameterEntities() []*Entity {
	return dtd.pentities.Values()
}

func (dtd *DTD) LookupNotation(name string) (*Notation, bool) {
	return dtd.notations.Get(name)
}

func (dtd *DTD) Notations() []*Notation {
	return dtd.notations.Values()
}

// ProcessingInstructions returns every processing instruction in the
// order they were encountered
func (dtd *DTD) ProcessingInstructions() []*ProcessingInstruction {
	return append([]*ProcessingInstruction(nil), dtd.pis...)
}

// element returns the element named name, creating it with no content
// specification if it does not exist yet
func (dtd *DTD) element(name string) *Element {
	if e, ok := dtd.elements.Get(name); ok {
		return e
	}
	e := newElement(name)
	_ = dtd.elements.Set(name, e)
	return e
}

// Element is an element type, created by the first ELEMENT or ATTLIST
// declaration that names it.
type Element struct {
	name           string
	contentSpec    string
	hasContentSpec bool
	mixed          bool
	attributes     *orderedmap.Map[string, *Attribute]
}

func newElement(name string) *Element {
	return &Element{
		name:       name,
		attributes: orderedmap.New[string, *Attribute](),
	}
}

func (e *Element) Name() string {
	return e.name
}

// ContentSpec returns the content specification, and false if no
// ELEMENT declaration has been seen for this element.
func (e *Element) ContentSpec() (string, bool) {
	return e.contentSpec, e.hasContentSpec
}

// ContentSpecification is like ContentSpec, but returns ContentNotGiven
// when the element has no content specification
func (e *Element) ContentSpecification() string {
	if !e.hasContentSpec {
		return ContentNotGiven
	}
	return e.contentSpec
}

// IsMixed returns true if the content model starts with (#PCDATA
func (e *Element) IsMixed() bool {
	return e.mixed
}

func (e *Element) LookupAttribute(name string) (*Attribute, bool) {
	return e.attributes.Get(name)
}

// Attributes returns the attributes in declaration order
func (e *Element) Attributes() []*Attribute {
	return e.attributes.Values()
}

func (e *Element) setContentSpec(spec string, mixed bool) {
	e.contentSpec = spec
	e.hasContentSpec = true
	e.mixed = mixed
}

// ProcessingInstruction is a <?target data?> found in the DTD
type ProcessingInstruction struct {
	target string
	data   string
}

func (pi *ProcessingInstruction) Target() string {
	return pi.target
}

func (pi *ProcessingInstruction) Data() string {
	return pi.data
}

// Notation is a <!NOTATION> declaration
type Notation struct {
	name     string
	publicID string
	systemID string
	hasPub   bool
	hasSys   bool
}

func (n *Notation) Name() string {
	return n.name
}

func (n *Notation) PublicID() (string, bool) {
	return n.publicID, n.hasPub
}

func (n *Notation) SystemID() (string, bool) {
	return n.systemID, n.hasSys
}
