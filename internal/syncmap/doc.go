// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Get/Set/Delete/List operations guarded by a sync.RWMutex.  It backs
// the process-wide tables of syncdict (type descriptors, persistability
// verdicts and named comparers) that are built once and read from many
// goroutines.
package syncmap
