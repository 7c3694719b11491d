// Command period resolves relative offsets and describes dates from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/ErlanBelekov/period/clock"
)

func main() {
	if err := newRootCmd(clock.System{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
