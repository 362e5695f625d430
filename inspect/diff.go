package inspect

import (
	"context"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a document diff. Op is '-' for removed lines, '+'
// for added ones and ' ' for context.
type Line struct {
	Op   rune
	Text string
}

// Preview reports what DedupeAll would change without writing: the line
// diff of the encoded document and the number of rows that would be
// dropped.
func (s *Service) Preview(ctx context.Context, URL, pattern string) ([]Line, int, error) {
	doc, err := s.Load(ctx, URL)
	if err != nil {
		return nil, 0, err
	}
	before, err := doc.Encode()
	if err != nil {
		return nil, 0, err
	}
	dropped := 0
	for _, nodePath := range doc.Select(pattern) {
		prop, err := doc.Property(nodePath)
		if err != nil {
			return nil, 0, err
		}
		dropped += prop.Normalize()
	}
	after, err := doc.Encode()
	if err != nil {
		return nil, 0, err
	}
	return lineDiff(string(before), string(after)), dropped, nil
}

func lineDiff(before, after string) []Line {
	dmp := diffpatch.New()
	from, to, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(from, to, false), lines)
	var result []Line
	for _, diff := range diffs {
		op := ' '
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = '+'
		case diffpatch.DiffDelete:
			op = '-'
		}
		for _, text := range strings.SplitAfter(diff.Text, "\n") {
			if text == "" {
				continue
			}
			result = append(result, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return result
}
