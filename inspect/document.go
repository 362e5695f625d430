package inspect

import (
	"fmt"
	"slices"

	"github.com/viant/syncdict/internal/matcher"
	"github.com/viant/syncdict/objpath"
	"github.com/viant/syncdict/persist"
)

// Document is a decoded generic tree: mappings are map[string]any and
// sequences []any.
type Document struct {
	URL  string
	Root any

	codec   persist.Codec
	service *Service
}

// Finding is a duplicate row found in a document.
type Finding struct {
	Path  string
	Row   int
	Key   any
	First int
}

// Format returns the codec name the document was decoded with.
func (d *Document) Format() string { return d.codec.Name() }

// Get resolves path against the document tree.
func (d *Document) Get(path string) (any, error) {
	return d.service.resolver.Resolve(d.Root, path)
}

// Encode serialises the tree with the document's codec.
func (d *Document) Encode() ([]byte, error) {
	data, err := d.codec.Marshal(d.Root)
	if err != nil {
		return nil, fmt.Errorf("encode document %q: %w", d.URL, err)
	}
	return data, nil
}

// Property resolves path to a synced map node.
func (d *Document) Property(path string) (*Property, error) {
	value, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return newNodeProperty(path, value, d.service.config, d.service.logger)
}

// Properties returns the canonical paths of all synced map nodes in the
// document, depth first with mapping keys sorted.
func (d *Document) Properties() []string {
	var paths []string
	d.walk(d.Root, nil, func(path objpath.Path) {
		paths = append(paths, path.String())
	})
	return paths
}

// Select returns the synced map node paths matching pattern. A pattern
// without wildcards is returned as is, so it may address a node that
// Properties cannot discover; an empty pattern selects every node.
func (d *Document) Select(pattern string) []string {
	switch {
	case pattern == "":
		return d.Properties()
	case !matcher.IsPattern(pattern):
		return []string{pattern}
	}
	var selected []string
	for _, path := range d.Properties() {
		if matcher.Match(pattern, path) {
			selected = append(selected, path)
		}
	}
	return selected
}

// Findings reports duplicate rows of the synced map nodes at paths, or of
// every node when no path is given.
func (d *Document) Findings(paths ...string) ([]Finding, error) {
	if len(paths) == 0 {
		paths = d.Properties()
	}
	var findings []Finding
	for _, path := range paths {
		prop, err := d.Property(path)
		if err != nil {
			return nil, err
		}
		for _, row := range prop.Duplicates() {
			key, _, _ := prop.View().EntryAt(row)
			first, err := prop.IndexOfKey(key)
			if err != nil {
				return nil, err
			}
			findings = append(findings, Finding{Path: path, Row: row, Key: key, First: first})
		}
	}
	return findings, nil
}

func (d *Document) walk(value any, at objpath.Path, visit func(objpath.Path)) {
	if _, ok := isNode(value, d.service.config); ok {
		visit(at)
		return
	}
	switch actual := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(actual))
		for key := range actual {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			d.walk(actual[key], at.Append(objpath.Field(key)), visit)
		}
	case []any:
		for i, item := range actual {
			d.walk(item, at.Append(objpath.Index(i)), visit)
		}
	}
}
