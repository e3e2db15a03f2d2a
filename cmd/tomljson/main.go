// Command tomljson reads a TOML document and prints its canonical
// typed-JSON representation, for use as a toml-test decoder harness.
package main

import (
	"fmt"
	"os"

	"github.com/kallstrom/toml"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "tomljson [file]",
		Short: "Decode a TOML document into canonical typed JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				root *toml.Key
				err  error
			)
			if len(args) == 1 {
				input = args[0]
				root, err = toml.LoadFile(input)
			} else {
				input = "<stdin>"
				root, err = toml.LoadStream(cmd.InOrStdin(), input)
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if err := toml.WriteJSON(cmd.OutOrStdout(), root); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.SetIn(os.Stdin)
	return cmd
}
