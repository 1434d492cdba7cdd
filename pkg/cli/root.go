package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shelfdb/pkg/catalog"
	"shelfdb/pkg/common"
	"shelfdb/pkg/config"
	"shelfdb/pkg/core"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Strategy   string
	Duplicates string
}

// NewRootCommand creates the root command for the shelf CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "shelf",
		Short:         "shelf - in-memory book index and word counter",
		Long:          "Query an in-memory multi-index book library and count word frequencies in text files.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to shelf.yaml (default: configs/shelf.yaml or shelf.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", "", "library strategy override (indexed|scan)")
	cmd.PersistentFlags().StringVar(&opts.Duplicates, "duplicates", "", "duplicate policy override (multiset|set)")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewWordCountCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Strategy != "" {
		cfg.Library.Strategy = opts.Strategy
	}
	if opts.Duplicates != "" {
		cfg.Library.Duplicates = opts.Duplicates
	}
	return cfg, nil
}

func newLibrary(opts *RootOptions) (core.Library, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return core.NewLibrary(cfg.Library)
}

// newCatalogLibrary returns a library holding the sample catalog.
func newCatalogLibrary(opts *RootOptions) (core.Library, error) {
	lib, err := newLibrary(opts)
	if err != nil {
		return nil, err
	}
	catalog.Populate(lib, catalog.SeedData())
	return lib, nil
}

func printBooks(w io.Writer, books []common.Book) {
	for _, b := range books {
		fmt.Fprintln(w, b.String())
	}
}
