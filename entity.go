package dtd

// EntityType represents the type of entity
type EntityType int

const (
	InternalGeneralEntity EntityType = iota + 1
	ExternalGeneralParsedEntity
	ExternalGeneralUnparsedEntity
	InternalParameterEntity
	ExternalParameterEntity
)

func (t EntityType) String() string {
	switch t {
	case InternalGeneralEntity:
		return "InternalGeneralEntity"
	case ExternalGeneralParsedEntity:
		return "ExternalGeneralParsedEntity"
	case ExternalGeneralUnparsedEntity:
		return "ExternalGeneralUnparsedEntity"
	case InternalParameterEntity:
		return "InternalParameterEntity"
	case ExternalParameterEntity:
		return "ExternalParameterEntity"
	}
	return "UndefinedEntity"
}

// Entity is a general or parameter entity. Internal entities carry
// their replacement text, fully expanded at declaration time.
// External entities have empty content, since external content is
// never loaded.
type Entity struct {
	name     string
	etype    EntityType
	content  string
	publicID string
	systemID string
	notation string
	hasPub   bool
	hasSys   bool
}

func (e *Entity) Name() string {
	return e.name
}

func (e *Entity) EntityType() EntityType {
	return e.etype
}

// Content returns the replacement text
func (e *Entity) Content() string {
	return e.content
}

func (e *Entity) IsExternal() bool {
	switch e.etype {
	case ExternalGeneralParsedEntity, ExternalGeneralUnparsedEntity, ExternalParameterEntity:
		return true
	}
	return false
}

func (e *Entity) IsParameter() bool {
	return e.etype == InternalParameterEntity || e.etype == ExternalParameterEntity
}

func (e *Entity) PublicID() (string, bool) {
	return e.publicID, e.hasPub
}

func (e *Entity) SystemID() (string, bool) {
	return e.systemID, e.hasSys
}

// Notation returns the NDATA notation name of an unparsed entity
func (e *Entity) Notation() (string, bool) {
	return e.notation, e.etype == ExternalGeneralUnparsedEntity
}
