package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"inspection configuration YAML path"`

	Get    *GetCmd    `command:"get"    description:"Resolve a path in a document and print the value"`
	Rows   *RowsCmd   `command:"rows"   description:"List the persisted rows of a synced map, marking duplicates"`
	Dedupe *DedupeCmd `command:"dedupe" description:"Drop duplicate rows and write the document back"`
	Check  *CheckCmd  `command:"check"  description:"Report duplicate rows, failing when any exist"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "get":
		o.Get = &GetCmd{}
	case "rows":
		o.Rows = &RowsCmd{}
	case "dedupe":
		o.Dedupe = &DedupeCmd{}
	case "check":
		o.Check = &CheckCmd{}
	}
}

// Source identifies a document and an optional path inside it.
type Source struct {
	URL  string `short:"u" long:"url" required:"true" description:"document URL or local path"`
	Path string `short:"p" long:"path" description:"path inside the document, e.g. level.spawns or items.Array.data[0]; sub-commands working on synced maps accept wildcards such as zones.[*].loot"`
}
