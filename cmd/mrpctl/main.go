package main

import (
	"fmt"
	"os"

	"github.com/sporadicmrp/engine/cmd/mrpctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
