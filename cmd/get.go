package cmd

import (
	"context"

	"github.com/davecgh/go-spew/spew"

	"github.com/viant/syncdict/persist"
)

// GetCmd prints the value found at a path.
type GetCmd struct {
	Source
	Format string `long:"format" choice:"yaml" choice:"json" description:"output format, defaults to the document format"`
	Dump   bool   `short:"d" long:"dump" description:"print a go-spew dump of the decoded value"`
}

func (c *GetCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	doc, err := svc.Load(context.Background(), c.URL)
	if err != nil {
		return err
	}
	value, err := doc.Get(c.Path)
	if err != nil {
		return err
	}
	if c.Dump {
		spew.Fdump(stdout, value)
		return nil
	}
	format := c.Format
	if format == "" {
		format = doc.Format()
	}
	codec, err := persist.CodecFor(format)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(value)
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = stdout.Write(data)
	return err
}
