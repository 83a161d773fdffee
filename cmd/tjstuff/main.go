// Command tjstuff serves and queries the tjStuff+ pitch dashboard.
package main

import (
	"context"
	"os"

	"github.com/wdm0006/tjstuff/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
