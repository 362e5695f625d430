package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/viant/syncdict/inspect"
)

// RowsCmd lists mirror rows the way a host editor shows them: every
// persisted row, with rows hidden from the runtime map flagged.
type RowsCmd struct {
	Source
}

func (c *RowsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	doc, err := svc.Load(context.Background(), c.URL)
	if err != nil {
		return err
	}
	paths := doc.Select(c.Path)

	title := color.New(color.Bold)
	duplicate := color.New(color.FgRed)
	if colorEnabled(svc.Config(), stdout) {
		title.EnableColor()
		duplicate.EnableColor()
	} else {
		title.DisableColor()
		duplicate.DisableColor()
	}

	for _, path := range paths {
		prop, err := doc.Property(path)
		if err != nil {
			return err
		}
		title.Fprintf(stdout, "%s: %d rows, %d keys\n", displayPath(path), prop.MirrorLen(), prop.Count())
		for _, row := range prop.Rows() {
			if row.Unique {
				fmt.Fprintf(stdout, "  [%d]\t%v\t%v\n", row.Index, row.Key, row.Value)
				continue
			}
			duplicate.Fprintf(stdout, "  [%d]\t%v\t%v\tduplicate of [%d]\n", row.Index, row.Key, row.Value, firstRow(prop, row))
		}
	}
	return nil
}

func firstRow(prop *inspect.Property, row inspect.Row) int {
	first, err := prop.IndexOfKey(row.Key)
	if err != nil {
		return -1
	}
	return first
}

func displayPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
