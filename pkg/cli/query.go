package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"shelfdb/pkg/sql"
)

func NewQueryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "query <sql>",
		Short:   "Run one SELECT against the sample catalog",
		Example: `  shelf query "SELECT * FROM books WHERE year BETWEEN 2011 AND 2014"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newCatalogLibrary(opts)
			if err != nil {
				return err
			}
			rows, err := sql.Query(lib, strings.Join(args, " "))
			if err != nil {
				return err
			}
			printBooks(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}
