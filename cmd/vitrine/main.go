// Command vitrine resolves the agency's service offerings for every
// display surface.
package main

import (
	"os"

	"github.com/mdsolution/vitrine/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
