package cli

import (
	"github.com/spf13/cobra"

	"shelfdb/pkg/wordcount"
)

func NewWordCountCommand(opts *RootOptions) *cobra.Command {
	var top int
	var alphabet string

	cmd := &cobra.Command{
		Use:   "wordcount [files...]",
		Short: "Print the most and least frequent words",
		Long:  "Count words in UTF-8 text files. Any read error aborts the run without output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if top <= 0 {
				top = cfg.WordCount.Top
			}
			if alphabet == "" {
				alphabet = cfg.WordCount.Alphabet
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{cfg.WordCount.Path}
			}

			counter, err := wordcount.CountFiles(cmd.Context(), alphabet, paths...)
			if err != nil {
				return err
			}
			_, err = counter.Report(top).WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "number of words in each list (default from config)")
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "word alphabet: cyrillic|letters (default from config)")
	return cmd
}
