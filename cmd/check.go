package cmd

import (
	"context"
	"errors"
	"fmt"
)

// ErrDuplicates is returned by check when duplicate rows exist.
var ErrDuplicates = errors.New("duplicate rows found")

// CheckCmd reports duplicate rows.
type CheckCmd struct {
	Source
}

func (c *CheckCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	doc, err := svc.Load(context.Background(), c.URL)
	if err != nil {
		return err
	}
	paths := doc.Select(c.Path)
	if len(paths) == 0 {
		return nil
	}
	findings, err := doc.Findings(paths...)
	if err != nil {
		return err
	}
	for _, finding := range findings {
		fmt.Fprintf(stdout, "%s: row [%d] key %v duplicates row [%d]\n", displayPath(finding.Path), finding.Row, finding.Key, finding.First)
	}
	if len(findings) > 0 {
		return fmt.Errorf("%w: %d in %s", ErrDuplicates, len(findings), c.URL)
	}
	return nil
}
