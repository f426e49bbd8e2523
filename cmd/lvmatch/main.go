// Command lvmatch solves small minimum-cost assignment problems.
package main

import (
	"os"

	"github.com/katalvlaran/lvmatch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
