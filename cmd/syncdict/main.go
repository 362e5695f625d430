package main

import (
	"os"

	"github.com/viant/syncdict/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
