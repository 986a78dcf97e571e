package ir

import (
	"sync"
)

// Interner maps strings to dense SymbolIDs in first-seen order. Entries are
// never removed or renumbered.
type Interner struct {
	mu      sync.RWMutex
	strings []string
	index   map[string]SymbolID
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{
		strings: make([]string, 0),
		index:   make(map[string]SymbolID),
	}
}

// Intern returns the SymbolID for s, assigning the next unused ID the first
// time s is seen.
func (in *Interner) Intern(s string) SymbolID {
	in.mu.RLock()
	id, ok := in.index[s]
	in.mu.RUnlock()
	if ok {
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	// Another writer may have won between the two locks.
	if id, ok := in.index[s]; ok {
		return id
	}
	id = SymbolID(len(in.strings))
	in.strings = append(in.strings, s)
	in.index[s] = id
	return id
}

// Lookup returns the SymbolID of an already interned string.
func (in *Interner) Lookup(s string) (SymbolID, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	id, ok := in.index[s]
	return id, ok
}

// Get returns the string interned under id.
func (in *Interner) Get(id SymbolID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if int(id) < len(in.strings) {
		return in.strings[id], true
	}
	return "", false
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

// Strings returns every interned string indexed by its SymbolID.
func (in *Interner) Strings() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()

	out := make([]string, len(in.strings))
	copy(out, in.strings)
	return out
}
