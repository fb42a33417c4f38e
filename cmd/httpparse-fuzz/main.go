// Command httpparse-fuzz drives the httpparse scanners over a corpus of
// saved messages, byte-by-byte, to exercise the resumability contract the
// library promises: every prefix of a valid message should return EAGAIN,
// and the full message should parse cleanly from whatever point it was
// last retried.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "httpparse-fuzz",
		Short: "Drive httpparse scanners over a corpus of HTTP messages",
	}
	root.AddCommand(newRunCmd(), newSelftestCmd())
	return root
}
