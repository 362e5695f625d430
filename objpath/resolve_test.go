package objpath

import (
	"errors"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/syncdict/synced"
)

type inner struct {
	x int
}

type node struct {
	name  string
	inner inner
	next  *node
}

type base struct {
	base_field int
}

type derived struct {
	base
	own string
}

type holder struct {
	items []derived
}

type shadowBase struct {
	Name  string
	Extra string
}

type shadow struct {
	shadowBase
	Name string
}

type account struct {
	first, last string
}

func (a *account) Member(name string) (any, bool) {
	if name == "FullName" {
		return a.first + " " + a.last, true
	}
	return nil, false
}

// Reset has the shape of a getter; resolving must never call it.
func (a *account) Reset() string {
	a.first, a.last = "", ""
	return "reset"
}

type profile struct {
	*account
	Label string
}

type wallet struct {
	Coins  []int
	Tags   map[string]string
	Any    any
	Runes  string
	Series iter.Seq[string]
	Table  iter.Seq2[string, int]
	Fixed  [2]string
}

type bag map[string]int

func (b bag) Member(name string) (any, bool) {
	if strings.HasPrefix(name, "double_") {
		v, ok := b[strings.TrimPrefix(name, "double_")]
		return v * 2, ok
	}
	return nil, false
}

type countdown int

func (c countdown) Enumerate() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := int(c); i > 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}

func TestResolve(t *testing.T) {
	seq2 := maps.All(map[string]int{"only": 1})
	w := wallet{
		Coins:  []int{1, 5, 10},
		Tags:   map[string]string{"color": "red"},
		Any:    &node{name: "boxed"},
		Runes:  "héllo",
		Series: slices.Values([]string{"a", "b", "c"}),
		Table:  seq2,
		Fixed:  [2]string{"l", "r"},
	}

	var testCases = []struct {
		description string
		root        any
		path        string
		expect      any
	}{
		{description: "nested unexported field", root: node{name: "a", inner: inner{x: 5}}, path: "inner.x", expect: 5},
		{description: "pointer root", root: &node{name: "a", inner: inner{x: 7}}, path: "inner.x", expect: 7},
		{description: "embedded field", root: holder{items: []derived{{base: base{base_field: 1}}, {base: base{base_field: 2}}}}, path: "items.[1].base_field", expect: 2},
		{description: "embedded field by host marker", root: holder{items: []derived{{base: base{base_field: 1}}}}, path: "items.Array.data[0].base_field", expect: 1},
		{description: "outer field shadows embedded", root: shadow{shadowBase: shadowBase{Name: "inner", Extra: "e"}, Name: "outer"}, path: "Name", expect: "outer"},
		{description: "embedded sibling still reachable", root: shadow{shadowBase: shadowBase{Name: "inner", Extra: "e"}, Name: "outer"}, path: "Extra", expect: "e"},
		{description: "embedded struct by type name", root: shadow{shadowBase: shadowBase{Name: "inner"}}, path: "shadowBase.Name", expect: "inner"},
		{description: "pointer accessor on value root", root: account{first: "Ada", last: "Lovelace"}, path: "FullName", expect: "Ada Lovelace"},
		{description: "accessor defers to fields", root: account{first: "Ada", last: "Lovelace"}, path: "last", expect: "Lovelace"},
		{description: "promoted accessor", root: profile{account: &account{first: "Alan", last: "Turing"}}, path: "FullName", expect: "Alan Turing"},
		{description: "field through nil embedded", root: profile{Label: "x"}, path: "first", expect: nil},
		{description: "slice", root: w, path: "Coins.[2]", expect: 10},
		{description: "array", root: w, path: "Fixed.[1]", expect: "r"},
		{description: "string runes", root: w, path: "Runes.[1]", expect: 'é'},
		{description: "map key", root: w, path: "Tags.color", expect: "red"},
		{description: "interface holding pointer", root: w, path: "Any.name", expect: "boxed"},
		{description: "iter.Seq", root: w, path: "Series.[2]", expect: "c"},
		{description: "iter.Seq2", root: w, path: "Table.[0].Key", expect: "only"},
		{description: "generic tree", root: map[string]any{"a": []any{map[string]any{"b": true}}}, path: "a.[0].b", expect: true},
		{description: "member accessor", root: bag{"n": 4}, path: "double_n", expect: 8},
		{description: "member accessor defers", root: bag{"n": 4}, path: "n", expect: 4},
		{description: "enumerable", root: countdown(3), path: "[1]", expect: 2},
		{description: "nil root", root: nil, path: "a.b", expect: nil},
		{description: "nil intermediate", root: node{name: "a"}, path: "next.name", expect: nil},
		{description: "empty path", root: 42, path: "", expect: 42},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := Resolve(testCase.root, testCase.path)
			require.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	root := holder{items: []derived{{}, {}}}

	_, err := Resolve(root, "items.[5].x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	var rangeErr *IndexOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 5, rangeErr.Index)
	assert.Equal(t, 2, rangeErr.Length)
	assert.Equal(t, "items.[5]", rangeErr.Path)

	_, err = Resolve(root, "items.[0].missing")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
	var memberErr *MemberNotFoundError
	require.True(t, errors.As(err, &memberErr))
	assert.Equal(t, "missing", memberErr.Name)
	assert.Equal(t, reflect.TypeOf(derived{}), memberErr.Type)

	_, err = Resolve(root, "items.[0].own.[0].x")
	assert.True(t, errors.Is(err, ErrIndexOutOfRange), "empty string has no runes")

	_, err = Resolve(node{inner: inner{x: 1}}, "inner.[0]")
	assert.True(t, errors.Is(err, ErrNotEnumerable))

	_, err = Resolve(map[string]int{"a": 1}, "[0]")
	assert.True(t, errors.Is(err, ErrNotEnumerable), "maps have no stable order")

	_, err = Resolve(map[string]int{"a": 1}, "b")
	assert.True(t, errors.Is(err, ErrMemberNotFound))

	_, err = Resolve(account{}, "Reset")
	assert.True(t, errors.Is(err, ErrMemberNotFound), "methods are not members")

	_, err = Resolve(profile{Label: "x"}, "FullName")
	assert.True(t, errors.Is(err, ErrMemberNotFound), "accessor promoted through nil is skipped")

	_, err = Resolve(root, "items.[x]")
	assert.True(t, errors.Is(err, ErrSyntax))

	_, err = Resolve(countdown(2), "[2]")
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 2, rangeErr.Length)
}

type stage struct {
	Spawns synced.Map[string, int]
}

func TestResolve_SyncedMap(t *testing.T) {
	lv := &stage{}
	lv.Spawns.Set("north", 1)
	lv.Spawns.Set("south", 2)

	actual, err := Resolve(lv, "Spawns.[1].Value")
	require.NoError(t, err)
	assert.Equal(t, 2, actual)

	actual, err = Resolve(lv, "Spawns.Array.data[0].Key")
	require.NoError(t, err)
	assert.Equal(t, "north", actual)

	for path, expect := range map[string]any{
		"Spawns.Len":       2,
		"Spawns.Count":     2,
		"Spawns.MirrorLen": 2,
		"Spawns.Comparer":  synced.DefaultComparerName,
	} {
		actual, err = Resolve(lv, path)
		require.NoError(t, err, path)
		assert.Equal(t, expect, actual, path)
	}

	// by value roots are copied, enumeration still works
	actual, err = Resolve(*lv, "Spawns.[0].Key")
	require.NoError(t, err)
	assert.Equal(t, "north", actual)
}

func TestResolver_ResolveValue_Live(t *testing.T) {
	lv := &stage{}
	lv.Spawns.Set("north", 1)

	p, err := Parse("Spawns")
	require.NoError(t, err)
	v, err := New().ResolveValue(lv, p)
	require.NoError(t, err)
	require.True(t, v.CanAddr())

	spawns := v.Addr().Interface().(*synced.Map[string, int])
	spawns.Set("east", 3)
	assert.True(t, lv.Spawns.ContainsKey("east"))
}

func TestResolver_Options(t *testing.T) {
	root := map[string]any{"list": []any{"a", "b"}}

	resolver := New(WithMarker("Items"))
	actual, err := resolver.Resolve(root, "list.Items[1]")
	require.NoError(t, err)
	assert.Equal(t, "b", actual)

	_, err = resolver.Resolve(root, "list.Array.data[1]")
	assert.True(t, errors.Is(err, ErrMemberNotFound))

	registry := NewRegistry()
	registry.Register(reflect.TypeOf(&shadow{}))
	assert.Equal(t, []string{"shadowBase", "Name", "Extra"}, registry.Members(reflect.TypeOf(shadow{})))
	actual, err = New(WithRegistry(registry)).Resolve(shadow{Name: "n"}, "Name")
	require.NoError(t, err)
	assert.Equal(t, "n", actual)
}

func TestResolve_DoesNotMutate(t *testing.T) {
	root := holder{items: []derived{{own: "a"}}}
	_, err := Resolve(&root, "items.[0].own")
	require.NoError(t, err)
	assert.Equal(t, "a", root.items[0].own)
}

func TestResolve_NeverRunsMethods(t *testing.T) {
	var testCases = []struct {
		description string
		path        string
	}{
		{description: "normalize", path: "Spawns.Normalize"},
		{description: "duplicates", path: "Spawns.Duplicates"},
		{description: "keys", path: "Spawns.Keys"},
		{description: "pairs", path: "Spawns.Pairs"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			lv := &stage{}
			lv.Spawns.Apply([]synced.Pair[string, int]{{"a", 1}, {"a", 2}, {"b", 3}})
			before := lv.Spawns.Pairs()

			_, err := Resolve(lv, testCase.path)
			assert.True(t, errors.Is(err, ErrMemberNotFound))
			assert.Equal(t, before, lv.Spawns.Pairs())
			assert.Equal(t, []int{1}, lv.Spawns.Duplicates())
		})
	}

	a := &account{first: "Ada", last: "Lovelace"}
	_, err := Resolve(a, "Reset")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
	assert.Equal(t, "Ada", a.first)
}

func TestResolve_ConcurrentReads(t *testing.T) {
	lv := &stage{}
	lv.Spawns.Apply([]synced.Pair[string, int]{{"a", 1}, {"a", 2}, {"b", 3}})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, path := range []string{"Spawns.[1].Key", "Spawns.Len", "Spawns.MirrorLen"} {
					if _, err := Resolve(lv, path); err != nil {
						errs <- err
						return
					}
				}
				if lv.Spawns.IsFirstOccurrence(1) || len(lv.Spawns.Duplicates()) != 1 {
					errs <- errors.New("row 1 should be a duplicate")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 3, lv.Spawns.MirrorLen())
}

func TestResolver_ResolveValue_Unexported(t *testing.T) {
	lv := &stage{}
	lv.Spawns.Apply([]synced.Pair[string, int]{{"a", 1}, {"b", 2}})

	var testCases = []struct {
		description string
		root        any
		path        string
		expect      any
		settable    bool
	}{
		{description: "exported chain", root: lv, path: "Spawns.[1].Key", expect: "b", settable: true},
		{description: "row key behind unexported mirror", root: lv, path: "Spawns.mirror.[1].Key", expect: "b"},
		{description: "unexported mirror", root: lv, path: "Spawns.mirror", expect: []synced.Pair[string, int]{{"a", 1}, {"b", 2}}},
		{description: "unexported field", root: &node{inner: inner{x: 3}}, path: "inner.x", expect: 3},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			p, err := Parse(testCase.path)
			require.NoError(t, err)
			v, err := New().ResolveValue(testCase.root, p)
			require.NoError(t, err)
			assert.Equal(t, testCase.settable, v.CanSet())
			assert.Equal(t, testCase.expect, v.Interface())
		})
	}

	p, err := Parse("Spawns.mirror")
	require.NoError(t, err)
	v, err := New().ResolveValue(lv, p)
	require.NoError(t, err)
	assert.False(t, v.CanAddr())
	assert.True(t, lv.Spawns.IsFirstOccurrence(1))
}

func TestResolver_ResolvePath_NegativeIndex(t *testing.T) {
	var testCases = []struct {
		description string
		root        any
		length      int
	}{
		{description: "slice", root: []int{1, 2}, length: 2},
		{description: "array", root: [3]string{"a", "b", "c"}, length: 3},
		{description: "string", root: "ab", length: 2},
		{description: "enumerable", root: countdown(2), length: 2},
		{description: "iter.Seq", root: slices.Values([]int{7}), length: 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := New().ResolvePath(testCase.root, Path{Index(-1)})
			require.Error(t, err)
			var rangeErr *IndexOutOfRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, -1, rangeErr.Index)
			assert.Equal(t, testCase.length, rangeErr.Length)
		})
	}
}

func TestCapability(t *testing.T) {
	addressed := reflect.New(reflect.TypeOf(account{})).Elem()

	var testCases = []struct {
		description string
		value       reflect.Value
		expect      bool
	}{
		{description: "value receiver", value: reflect.ValueOf(bag{}), expect: true},
		{description: "pointer receiver via address", value: addressed, expect: true},
		{description: "pointer receiver not addressable", value: reflect.ValueOf(account{}), expect: false},
		{description: "promoted through nil", value: reflect.ValueOf(profile{}), expect: false},
		{description: "promoted", value: reflect.ValueOf(profile{account: &account{}}), expect: true},
		{description: "nil pointer", value: reflect.ValueOf((*account)(nil)), expect: false},
		{description: "plain value", value: reflect.ValueOf(3), expect: false},
		{description: "invalid", value: reflect.Value{}, expect: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, ok := capability[MemberAccessor](testCase.value, "Member")
			assert.Equal(t, testCase.expect, ok)
		})
	}
}
