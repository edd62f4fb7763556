package main

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-envmodules/internal/cli"
	"github.com/jakoblorz/go-envmodules/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
