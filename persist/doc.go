// Package persist describes what the host serializer can persist.
//
// The host serializer used by syncdict is a plain structural one: it writes
// scalars, structs and ordered homogeneous sequences, and nothing else. Maps,
// interfaces, functions and channels have no persisted form. Types that need
// a richer runtime shape (synced.Map being the main one) implement Receiver
// and keep a persistable mirror of themselves.
//
// Check reports whether a Go type fits the persisted subset; Codec wraps the
// concrete encodings (YAML through gopkg.in/yaml.v3, JSON) the tooling reads
// and writes.
package persist
