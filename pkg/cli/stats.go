package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func NewStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load the sample catalog, run sample lookups and print counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newCatalogLibrary(opts)
			if err != nil {
				return err
			}
			lib.SearchByAuthor("Author1")
			lib.SearchByAuthor("Author6")
			lib.SearchByName("Name3")
			lib.SearchByYear(2012)
			lib.GetBooksFromInterval(2011, 2014)

			out := cmd.OutOrStdout()
			stats := lib.Stats()
			keys := make([]string, 0, len(stats))
			for k := range stats {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%s: %v\n", k, stats[k])
			}
			fmt.Fprintln(out)
			return lib.Monitor().WriteText(out)
		},
	}
}
