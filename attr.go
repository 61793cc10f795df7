package dtd

// AttributeType represents the declared type of an attribute
type AttributeType int

const (
	AttrInvalid AttributeType = iota
	AttrCDATA
	AttrID
	AttrIDRef
	AttrIDRefs
	AttrEntity
	AttrEntities
	AttrNMToken
	AttrNMTokens
	AttrEnumeration
	AttrNotation
)

var attrTypeNames = map[string]AttributeType{
	"CDATA":    AttrCDATA,
	"ID":       AttrID,
	"IDREF":    AttrIDRef,
	"IDREFS":   AttrIDRefs,
	"ENTITY":   AttrEntity,
	"ENTITIES": AttrEntities,
	"NMTOKEN":  AttrNMToken,
	"NMTOKENS": AttrNMTokens,
}

func (t AttributeType) String() string {
	switch t {
	case AttrCDATA:
		return "CDATA"
	case AttrID:
		return "ID"
	case AttrIDRef:
		return "IDREF"
	case AttrIDRefs:
		return "IDREFS"
	case AttrEntity:
		return "ENTITY"
	case AttrEntities:
		return "ENTITIES"
	case AttrNMToken:
		return "NMTOKEN"
	case AttrNMTokens:
		return "NMTOKENS"
	case AttrEnumeration:
		return "ENUMERATION"
	case AttrNotation:
		return "NOTATION"
	}
	return "INVALID"
}

// AttributeDefault represents the default declaration of an attribute
type AttributeDefault int

const (
	// AttrDefaultValue is a plain default value with no keyword
	AttrDefaultValue AttributeDefault = iota
	AttrDefaultRequired
	AttrDefaultImplied
	AttrDefaultFixed
)

func (d AttributeDefault) String() string {
	switch d {
	case AttrDefaultRequired:
		return "#REQUIRED"
	case AttrDefaultImplied:
		return "#IMPLIED"
	case AttrDefaultFixed:
		return "#FIXED"
	}
	return "DEFAULT"
}

// Enumeration is the list of values allowed by an enumerated or
// NOTATION attribute
type Enumeration []string

func (e Enumeration) Contains(s string) bool {
	for _, v := range e {
		if v == s {
			return true
		}
	}
	return false
}

// Attribute is one attribute definition from an ATTLIST declaration.
// It is immutable once created.
type Attribute struct {
	name         string
	atype        AttributeType
	def          AttributeDefault
	defaultValue string
	tree         Enumeration
}

func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) Type() AttributeType {
	return a.atype
}

func (a *Attribute) Default() AttributeDefault {
	return a.def
}

// DefaultValue is empty unless the attribute is #FIXED or has a plain
// default value
func (a *Attribute) DefaultValue() string {
	return a.defaultValue
}

// Enumeration returns the allowed values for ENUMERATION and NOTATION
// attributes, and nil otherwise
func (a *Attribute) Enumeration() Enumeration {
	if a.tree == nil {
		return nil
	}
	return append(Enumeration(nil), a.tree...)
}
