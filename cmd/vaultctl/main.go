// Command vaultctl evaluates formula files offline: concentration and IFRA limits,
// certificates across every category, and scale-ups to a production quantity.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
