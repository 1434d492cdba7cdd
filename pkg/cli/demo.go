package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDemoCommand prints the books by Author4 followed by the books published
// between 2011 and 2014.
func NewDemoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample catalog walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newCatalogLibrary(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printBooks(out, lib.SearchByAuthor("Author4"))
			fmt.Fprintln(out)
			printBooks(out, lib.GetBooksFromInterval(2011, 2014))
			return nil
		},
	}
}
