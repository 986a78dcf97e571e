package ir

// SymbolID is an interned string handle. IDs are dense, start at 0 and are
// only meaningful for the Interner that produced them.
type SymbolID uint32

// DefinitionKind tells which collection of the registry a name lives in.
type DefinitionKind int

const (
	// KindMessage marks a message definition.
	KindMessage DefinitionKind = iota + 1
	// KindEnum marks an enum definition.
	KindEnum
)

func (k DefinitionKind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}
