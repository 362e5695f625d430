package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/viant/syncdict/inspect"
	"github.com/viant/syncdict/internal/matcher"
)

// DedupeCmd drops duplicate rows and writes the document.
type DedupeCmd struct {
	Source
	Output string `short:"o" long:"output" description:"destination URL, defaults to the source document"`
	DryRun bool   `short:"n" long:"dry-run" description:"print the document diff instead of writing it"`
}

func (c *DedupeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if c.DryRun {
		return c.preview(ctx, svc)
	}
	var dropped int
	if c.Path == "" || matcher.IsPattern(c.Path) {
		dropped, err = svc.DedupeAll(ctx, c.URL, c.Path, c.Output)
	} else {
		dropped, err = svc.Dedupe(ctx, c.URL, c.Path, c.Output)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "dropped %d duplicate rows\n", dropped)
	return nil
}

func (c *DedupeCmd) preview(ctx context.Context, svc *inspect.Service) error {
	lines, dropped, err := svc.Preview(ctx, c.URL, c.Path)
	if err != nil {
		return err
	}
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	if colorEnabled(svc.Config(), stdout) {
		removed.EnableColor()
		added.EnableColor()
	} else {
		removed.DisableColor()
		added.DisableColor()
	}
	for _, line := range lines {
		switch line.Op {
		case '-':
			removed.Fprintf(stdout, "-%s\n", line.Text)
		case '+':
			added.Fprintf(stdout, "+%s\n", line.Text)
		}
	}
	fmt.Fprintf(stdout, "would drop %d duplicate rows\n", dropped)
	return nil
}
