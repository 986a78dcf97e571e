package ir

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/internal/debug"
)

// AST is the definition registry of one compilation. It owns every message
// and enum handed to it together with the compilation's Interner.
//
// Messages and enums share one namespace: a name identifies at most one
// definition across both collections. The first definition of a name wins;
// later ones are rejected with a *DuplicateDefinitionError and recorded in
// Diagnostics.
//
// An AST is filled by a single producer and then frozen with Freeze, after
// which it only serves reads.
type AST struct {
	mu sync.RWMutex

	messages     map[string]*Message
	messageOrder []string
	enums        map[string]*Enum
	enumOrder    []string
	names        map[string]definitionRef

	interner *Interner
	diags    diagnostics.Diagnostics
	logger   *slog.Logger
	frozen   *Schema
}

type definitionRef struct {
	kind DefinitionKind
	span diagnostics.Span
}

// Option configures an AST.
type Option func(*AST)

// WithInterner makes the registry use in instead of a fresh Interner.
func WithInterner(in *Interner) Option {
	return func(a *AST) {
		if in != nil {
			a.interner = in
		}
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(l *slog.Logger) Option {
	return func(a *AST) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAST creates an empty registry.
func NewAST(opts ...Option) *AST {
	a := &AST{
		messages: make(map[string]*Message),
		enums:    make(map[string]*Enum),
		names:    make(map[string]definitionRef),
		diags:    diagnostics.NewDiagnostics(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.interner == nil {
		a.interner = NewInterner()
	}
	if a.logger == nil {
		a.logger = debug.With("component", "registry")
	}
	return a
}

// AddMessage transfers m into the registry. The registry stores a deep copy,
// so later changes to m or its slices are not observed.
func (a *AST) AddMessage(m Message) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.claim(KindMessage, m.Name, m.Span); err != nil {
		return err
	}
	owned := m.Clone()
	a.messages[owned.Name] = &owned
	a.messageOrder = append(a.messageOrder, owned.Name)
	a.logger.Debug("registered definition",
		"kind", KindMessage.String(),
		"name", owned.Name,
		"fields", len(owned.Fields),
	)
	return nil
}

// AddEnum transfers e into the registry under the same rules as AddMessage.
func (a *AST) AddEnum(e Enum) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.claim(KindEnum, e.Name, e.Span); err != nil {
		return err
	}
	owned := e.Clone()
	a.enums[owned.Name] = &owned
	a.enumOrder = append(a.enumOrder, owned.Name)
	a.logger.Debug("registered definition",
		"kind", KindEnum.String(),
		"name", owned.Name,
		"variants", len(owned.Variants),
	)
	return nil
}

// claim reserves name for a definition of the given kind. Callers hold a.mu.
func (a *AST) claim(kind DefinitionKind, name string, span diagnostics.Span) error {
	if a.frozen != nil {
		return fmt.Errorf("add %s %q: %w", kind, name, ErrFrozen)
	}
	if name == "" {
		a.diags.PushError(diagnostics.NewEmptyNameError(kind.String(), span))
		return fmt.Errorf("add %s: %w", kind, ErrEmptyName)
	}
	if existing, ok := a.names[name]; ok {
		dup := &DuplicateDefinitionError{
			Name:         name,
			Kind:         kind,
			ExistingKind: existing.kind,
			Span:         span,
			ExistingSpan: existing.span,
		}
		a.diags.PushError(dup.Diagnostic())
		a.logger.Debug("duplicate definition rejected",
			"kind", kind.String(),
			"name", name,
			"existing", existing.kind.String(),
		)
		return dup
	}
	a.names[name] = definitionRef{kind: kind, span: span}
	return nil
}

// Message returns a copy of the message registered under name.
func (a *AST) Message(name string) (Message, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return lookupMessage(a.messages, name)
}

// Enum returns a copy of the enum registered under name.
func (a *AST) Enum(name string) (Enum, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return lookupEnum(a.enums, name)
}

// Lookup reports which kind of definition name refers to.
func (a *AST) Lookup(name string) (DefinitionKind, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ref, ok := a.names[name]
	return ref.kind, ok
}

// Messages returns copies of all messages in insertion order.
func (a *AST) Messages() []Message {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return orderedMessages(a.messages, a.messageOrder)
}

// Enums returns copies of all enums in insertion order.
func (a *AST) Enums() []Enum {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return orderedEnums(a.enums, a.enumOrder)
}

// Len returns the number of registered definitions.
func (a *AST) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.names)
}

// Intern interns s in the registry's Interner.
func (a *AST) Intern(s string) SymbolID {
	return a.interner.Intern(s)
}

// Interner returns the registry's Interner.
func (a *AST) Interner() *Interner {
	return a.interner
}

// Diagnostics returns a copy of every rejected insertion recorded so far.
func (a *AST) Diagnostics() diagnostics.Diagnostics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.diags.Clone()
}

// Freeze ends the construction phase and returns the read-only view of the
// registry. Further AddMessage and AddEnum calls fail with ErrFrozen.
// Calling Freeze again returns the same Schema.
func (a *AST) Freeze() *Schema {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.frozen != nil {
		return a.frozen
	}
	a.frozen = &Schema{
		messages:     a.messages,
		messageOrder: a.messageOrder,
		enums:        a.enums,
		enumOrder:    a.enumOrder,
		names:        a.names,
		interner:     a.interner,
	}
	a.logger.Debug("registry frozen",
		"messages", len(a.messageOrder),
		"enums", len(a.enumOrder),
		"symbols", a.interner.Len(),
	)
	return a.frozen
}

// Frozen reports whether Freeze has been called.
func (a *AST) Frozen() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frozen != nil
}

func lookupMessage(messages map[string]*Message, name string) (Message, bool) {
	m, ok := messages[name]
	if !ok {
		return Message{}, false
	}
	return m.Clone(), true
}

func lookupEnum(enums map[string]*Enum, name string) (Enum, bool) {
	e, ok := enums[name]
	if !ok {
		return Enum{}, false
	}
	return e.Clone(), true
}

func orderedMessages(messages map[string]*Message, order []string) []Message {
	out := make([]Message, len(order))
	for i, name := range order {
		out[i] = messages[name].Clone()
	}
	return out
}

func orderedEnums(enums map[string]*Enum, order []string) []Enum {
	out := make([]Enum, len(order))
	for i, name := range order {
		out[i] = enums[name].Clone()
	}
	return out
}
