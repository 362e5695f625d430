// Package objpath resolves structural paths against live Go object graphs.
//
// A path is a dot separated list of segments:
//   - name - a data member: struct field (exported or not), a member
//     offered by MemberAccessor, or string map key
//   - [i]  - the i-th element produced by forward enumeration
//
// Host editors address sequence elements as "<field>.Array.data[i]"; the
// marker is collapsed so that
//
//	"inventory.pairs.Array.data[2].value"
//
// is the same path as "inventory.pairs.[2].value". "name[i]" is accepted as
// a shorthand for "name.[i]".
//
// # Member lookup
//
// Field segments search the most-derived struct first and then its embedded
// structs, level by level. The first match wins, so a field declared on the
// outer struct shadows an embedded field of the same name. Methods are not
// members: a type exposes computed properties by implementing
// MemberAccessor, which is asked before any field. synced.Map answers Len,
// Count, MirrorLen and Comparer that way.
//
// # Enumeration
//
// Index segments need only forward enumeration: slices, arrays, strings
// (runes), iter.Seq and iter.Seq2 functions, and values implementing
// Enumerable (synced.Map enumerates its mirror rows).
//
// Resolution only reads: the only code it runs is Member and Enumerate,
// which must not mutate. Nothing is cached between calls, so callers must
// resolve again after mutating the graph. Values reached through unexported
// fields are returned as copies that cannot be set.
package objpath
