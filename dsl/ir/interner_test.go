package ir

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterner(t *testing.T) {
	t.Run("same content yields same id", func(t *testing.T) {
		in := NewInterner()
		first := in.Intern("Point")
		second := in.Intern("Point")
		assert.Equal(t, first, second)
		assert.Equal(t, 1, in.Len())
	})

	t.Run("ids are dense and follow first-seen order", func(t *testing.T) {
		in := NewInterner()
		words := []string{"x", "y", "", "x", "Point", "y"}
		var ids []SymbolID
		for _, w := range words {
			ids = append(ids, in.Intern(w))
		}
		assert.Equal(t, []SymbolID{0, 1, 2, 0, 3, 1}, ids)
		assert.Equal(t, []string{"x", "y", "", "Point"}, in.Strings())
	})

	t.Run("distinct strings get distinct ids", func(t *testing.T) {
		in := NewInterner()
		seen := make(map[SymbolID]string)
		for i := 0; i < 500; i++ {
			s := fmt.Sprintf("field_%d", i)
			id := in.Intern(s)
			prev, dup := seen[id]
			require.False(t, dup, "id %d assigned to both %q and %q", id, prev, s)
			seen[id] = s
		}
	})

	t.Run("lookup and get", func(t *testing.T) {
		in := NewInterner()
		id := in.Intern("Color")

		got, ok := in.Lookup("Color")
		require.True(t, ok)
		assert.Equal(t, id, got)

		_, ok = in.Lookup("Missing")
		assert.False(t, ok)
		assert.Equal(t, 1, in.Len(), "lookup must not assign")

		s, ok := in.Get(id)
		require.True(t, ok)
		assert.Equal(t, "Color", s)

		_, ok = in.Get(SymbolID(42))
		assert.False(t, ok)
	})

	t.Run("strings snapshot is detached", func(t *testing.T) {
		in := NewInterner()
		in.Intern("a")
		snapshot := in.Strings()
		snapshot[0] = "mutated"

		s, _ := in.Get(0)
		assert.Equal(t, "a", s)
	})
}

func TestInternerConcurrentIntern(t *testing.T) {
	in := NewInterner()
	const workers = 8
	results := make([][]SymbolID, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				results[w] = append(results[w], in.Intern(fmt.Sprintf("s%d", i)))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 100, in.Len())
	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w])
	}
}
