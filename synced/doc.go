// Package synced implements Map, an associative container that keeps two
// representations of the same entries in step:
//
//   - the runtime map, a hash table with unique keys used for all lookups;
//   - the mirror, an ordered []Pair that the host serializer persists.
//
// Every mutator rebuilds the mirror from the runtime map, so right after a
// call returns the mirror lists exactly the runtime entries, in insertion
// order. The mirror may still pick up duplicate keys out of band, either by
// being loaded from storage or edited row by row through SetPairs.
// AfterDeserialize rebuilds the runtime map from it, keeping the first
// occurrence of each key and dropping later ones. IsFirstOccurrence and
// Duplicates let editors flag the dropped rows.
//
// Key equality is pluggable through Comparer. Named comparers ("default",
// "fold", "deep" or any registered with RegisterComparer) are persisted with
// the mirror so a reload uses the same notion of equality.
//
// Map is not safe for concurrent use.
package synced
