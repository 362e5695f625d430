package objpath

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMarker is the host marker for "element of the backing sequence".
const DefaultMarker = "Array.data"

// Segment is one step of a Path: a member access when Index is nil, an
// element access otherwise.
type Segment struct {
	Name  string
	Index *int
}

// Field returns a member access segment.
func Field(name string) Segment {
	return Segment{Name: name}
}

// Index returns an element access segment.
func Index(index int) Segment {
	return Segment{Index: &index}
}

// IsIndex reports whether s is an element access.
func (s Segment) IsIndex() bool {
	return s.Index != nil
}

// String returns the canonical form of s: "name" or "[i]".
func (s Segment) String() string {
	if s.IsIndex() {
		return "[" + strconv.Itoa(*s.Index) + "]"
	}
	return s.Name
}

// Path is an ordered list of segments.
type Path []Segment

// String returns the canonical dotted form, e.g. "items.[1].name".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// Append returns a new path with segments added.
func (p Path) Append(segments ...Segment) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

// Parent returns p without its last segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Normalize removes the default host marker so that each element access is
// a single "[i]" segment.
func Normalize(path string) string {
	return normalize(path, DefaultMarker)
}

func normalize(path, marker string) string {
	if marker == "" {
		return path
	}
	needle := marker + "["
	var sb strings.Builder
	for {
		pos := strings.Index(path, needle)
		if pos < 0 {
			sb.WriteString(path)
			return sb.String()
		}
		if pos > 0 && path[pos-1] != '.' {
			// part of a longer member name
			sb.WriteString(path[:pos+len(needle)])
			path = path[pos+len(needle):]
			continue
		}
		sb.WriteString(path[:pos])
		path = path[pos+len(marker):]
	}
}

// Parse parses path using the default marker. An empty path is the root.
func Parse(path string) (Path, error) {
	return parse(path, DefaultMarker)
}

func parse(path, marker string) (Path, error) {
	normalized := normalize(path, marker)
	if normalized == "" {
		return Path{}, nil
	}
	var result Path
	for part := range strings.SplitSeq(normalized, ".") {
		segments, err := parsePart(part)
		if err != nil {
			return nil, &SyntaxError{Path: path, Segment: part, Reason: err.Error()}
		}
		result = append(result, segments...)
	}
	return result, nil
}

// parsePart parses "name", "[i]" or "name[i][j]".
func parsePart(part string) ([]Segment, error) {
	if part == "" {
		return nil, fmt.Errorf("empty segment")
	}
	var segments []Segment
	open := strings.IndexByte(part, '[')
	switch {
	case open < 0:
		if strings.IndexByte(part, ']') >= 0 {
			return nil, fmt.Errorf("unbalanced ']'")
		}
		return []Segment{Field(part)}, nil
	case open > 0:
		name := part[:open]
		if strings.IndexByte(name, ']') >= 0 {
			return nil, fmt.Errorf("unbalanced ']'")
		}
		segments = append(segments, Field(name))
		part = part[open:]
	}
	for part != "" {
		if part[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after index", part)
		}
		end := strings.IndexByte(part, ']')
		if end < 0 {
			return nil, fmt.Errorf("missing ']'")
		}
		digits := part[1:end]
		index, err := strconv.Atoi(digits)
		if err != nil || !isDigits(digits) {
			return nil, fmt.Errorf("index %q is not a non-negative integer", digits)
		}
		segments = append(segments, Index(index))
		part = part[end+1:]
	}
	return segments, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
