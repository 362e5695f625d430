package synced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparers(t *testing.T) {
	var testCases = []struct {
		name     string
		comparer Comparer[any]
		a, b     any
		equal    bool
	}{
		{name: "default equal", comparer: Default[any](), a: "x", b: "x", equal: true},
		{name: "default case", comparer: Default[any](), a: "x", b: "X", equal: false},
		{name: "fold case", comparer: Fold[any](), a: "Straße", b: "STRASSE", equal: false},
		{name: "fold ascii", comparer: Fold[any](), a: "Hello", b: "hELLO", equal: true},
		{name: "fold mixed kinds", comparer: Fold[any](), a: "1", b: 1, equal: false},
		{name: "fold non string", comparer: Fold[any](), a: []int{1}, b: []int{1}, equal: true},
		{name: "deep maps", comparer: Deep[any](), a: map[string]any{"a": 1}, b: map[string]any{"a": 1}, equal: true},
		{name: "deep differs", comparer: Deep[any](), a: map[string]any{"a": 1}, b: map[string]any{"a": 2}, equal: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.comparer.Equal(tc.a, tc.b))
			if tc.equal {
				assert.Equal(t, tc.comparer.Hash(tc.a), tc.comparer.Hash(tc.b))
			}
		})
	}
}

func TestDeep_UncomparableKeys(t *testing.T) {
	m := NewWithComparer[any, int](Deep[any]())
	require.NoError(t, m.Add(map[string]any{"x": 1}, 1))
	assert.ErrorIs(t, m.Add(map[string]any{"x": 1}, 2), ErrDuplicateKey)
	assert.Equal(t, 1, m.Get(map[string]any{"x": 1}))
	assert.True(t, m.Remove(map[string]any{"x": 1}))
}

func TestLookupComparer(t *testing.T) {
	for _, name := range []string{"", DefaultComparerName, FoldComparerName, DeepComparerName} {
		_, ok := LookupComparer[string](name)
		assert.True(t, ok, name)
	}
	_, ok := LookupComparer[string]("missing")
	assert.False(t, ok)

	require.NoError(t, RegisterComparer[int]("int-only", Default[int]()))
	_, ok = LookupComparer[string]("int-only")
	assert.False(t, ok)
	_, ok = LookupComparer[int]("int-only")
	assert.True(t, ok)

	assert.Error(t, RegisterComparer[string](FoldComparerName, FoldString()))
	assert.Error(t, RegisterComparer[string]("nil", nil))
}
