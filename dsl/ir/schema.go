package ir

// Schema is the read-only view of a frozen AST. Nothing can change its
// definitions, so any number of goroutines may read it concurrently.
type Schema struct {
	messages     map[string]*Message
	messageOrder []string
	enums        map[string]*Enum
	enumOrder    []string
	names        map[string]definitionRef
	interner     *Interner
}

// Message returns a copy of the message registered under name.
func (s *Schema) Message(name string) (Message, bool) {
	return lookupMessage(s.messages, name)
}

// Enum returns a copy of the enum registered under name.
func (s *Schema) Enum(name string) (Enum, bool) {
	return lookupEnum(s.enums, name)
}

// Lookup reports which kind of definition name refers to.
func (s *Schema) Lookup(name string) (DefinitionKind, bool) {
	ref, ok := s.names[name]
	return ref.kind, ok
}

// Messages returns copies of all messages in insertion order.
func (s *Schema) Messages() []Message {
	return orderedMessages(s.messages, s.messageOrder)
}

// Enums returns copies of all enums in insertion order.
func (s *Schema) Enums() []Enum {
	return orderedEnums(s.enums, s.enumOrder)
}

// Len returns the number of definitions.
func (s *Schema) Len() int {
	return len(s.names)
}

// Interner returns the compilation's Interner. It stays usable after
// Freeze and is safe for concurrent use.
func (s *Schema) Interner() *Interner {
	return s.interner
}

// Symbol returns the SymbolID of name without assigning a new one.
func (s *Schema) Symbol(name string) (SymbolID, bool) {
	return s.interner.Lookup(name)
}

// Resolve returns the string interned under id.
func (s *Schema) Resolve(id SymbolID) (string, bool) {
	return s.interner.Get(id)
}

// Symbols returns every interned string indexed by its SymbolID.
func (s *Schema) Symbols() []string {
	return s.interner.Strings()
}
