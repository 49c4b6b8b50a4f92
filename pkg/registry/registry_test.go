package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T, names ...string) *List[int] {
	t.Helper()
	l := New[int]()
	for i, name := range names {
		require.NoError(t, l.Add(Entry[int]{Name: name, Doc: "doc " + name, Item: i}))
	}
	return l
}

func TestAdd(t *testing.T) {
	l := New[string]()
	assert.Equal(t, 0, l.Len())

	t.Run("valid entry", func(t *testing.T) {
		err := l.Add(Entry[string]{Name: "throw", Doc: "Catch an exception, when thrown.", Item: "__cxa_throw"})
		require.NoError(t, err)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "two words", "tab\tname"} {
			err := l.Add(Entry[string]{Name: name})
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), name)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		err := l.Add(Entry[string]{Name: "throw"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		e, ok := l.Lookup("throw")
		require.True(t, ok)
		assert.Equal(t, "__cxa_throw", e.Item, "first registration is kept")
	})
}

func TestLookupAndNames(t *testing.T) {
	l := newList(t, "throw", "catch", "rethrow")

	e, ok := l.Lookup("catch")
	require.True(t, ok)
	assert.Equal(t, Entry[int]{Name: "catch", Doc: "doc catch", Item: 1}, e)

	_, ok = l.Lookup("cat")
	assert.False(t, ok)

	assert.Equal(t, []string{"catch", "rethrow", "throw"}, l.Names())
}

func TestMatch(t *testing.T) {
	l := newList(t, "throw", "catch", "rethrow", "thread", "th")

	names := func(entries []Entry[int]) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.Name)
		}
		return out
	}

	assert.Equal(t, []string{"catch"}, names(l.Match("ca")))
	assert.Equal(t, []string{"throw"}, names(l.Match("thro")))
	assert.Equal(t, []string{"thread", "throw"}, names(l.Match("thr")))
	assert.Equal(t, []string{"th"}, names(l.Match("th")), "exact name wins")
	assert.Empty(t, l.Match("x"))
	assert.Empty(t, l.Match(""))
}

func TestConcurrency(t *testing.T) {
	l := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("item%d", n)
			_ = l.Add(Entry[int]{Name: name, Item: n})
			_, _ = l.Lookup(name)
			_ = l.Match("item")
			_ = l.Names()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, l.Len())
}
