package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shelfdb/pkg/catalog"
	"shelfdb/pkg/common"
	"shelfdb/pkg/core"
	"shelfdb/pkg/sql"
)

const Prompt = "shelf> "

func NewShellCommand(opts *RootOptions) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell over an in-process library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newLibrary(opts)
			if err != nil {
				return err
			}
			if seed {
				catalog.Populate(lib, catalog.SeedData())
			}
			return runShell(lib, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "preload the sample catalog")
	return cmd
}

func runShell(lib core.Library, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "shelf shell (strategy: %s). Type 'help' for commands.\n", lib.Strategy())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "add":
			handleAdd(lib, out, rest)
		case "rm", "del":
			handleRemove(lib, out, rest)
		case "title":
			handleSearch(out, rest, "title", lib.SearchByName)
		case "author":
			handleSearch(out, rest, "author", lib.SearchByAuthor)
		case "year":
			handleYear(lib, out, rest)
		case "range":
			handleRange(lib, out, rest)
		case "select":
			handleSelect(lib, out, line)
		case "list", "ls":
			printResult(out, lib.All(), 0)
		case "help":
			printHelp(out)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return nil
		default:
			fmt.Fprintf(out, "Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
	return scanner.Err()
}

// parseBook parses "title|author|year".
func parseBook(s string) (common.Book, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return common.Book{}, errors.New("expected <title>|<author>|<year>")
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return common.Book{}, errors.New("year must be an integer")
	}
	return common.NewBook(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), year), nil
}

func handleAdd(lib core.Library, out io.Writer, rest string) {
	book, err := parseBook(rest)
	if err != nil {
		fmt.Fprintf(out, "Usage: add <title>|<author>|<year> (%v)\n", err)
		return
	}
	before := lib.Len()
	lib.AddBook(book)
	if lib.Len() == before {
		fmt.Fprintln(out, "Already present")
		return
	}
	fmt.Fprintf(out, "OK (%d records)\n", lib.Len())
}

func handleRemove(lib core.Library, out io.Writer, rest string) {
	book, err := parseBook(rest)
	if err != nil {
		fmt.Fprintf(out, "Usage: rm <title>|<author>|<year> (%v)\n", err)
		return
	}
	before := lib.Len()
	lib.RemoveBook(book)
	if lib.Len() == before {
		fmt.Fprintln(out, "Not found")
		return
	}
	fmt.Fprintf(out, "Deleted (%d records)\n", lib.Len())
}

func handleSearch(out io.Writer, key, field string, search func(string) []common.Book) {
	if key == "" {
		fmt.Fprintf(out, "Usage: %s <value>\n", field)
		return
	}
	start := time.Now()
	books := search(key)
	printResult(out, books, time.Since(start))
}

func handleYear(lib core.Library, out io.Writer, rest string) {
	year, err := strconv.Atoi(rest)
	if err != nil {
		fmt.Fprintln(out, "Error: year must be an integer")
		return
	}
	start := time.Now()
	books := lib.SearchByYear(year)
	printResult(out, books, time.Since(start))
}

func handleRange(lib core.Library, out io.Writer, rest string) {
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		fmt.Fprintln(out, "Usage: range <low> <high>")
		return
	}
	low, err1 := strconv.Atoi(parts[0])
	high, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(out, "Error: years must be integers")
		return
	}
	start := time.Now()
	books := lib.GetBooksFromInterval(low, high)
	printResult(out, books, time.Since(start))
}

func handleSelect(lib core.Library, out io.Writer, line string) {
	start := time.Now()
	books, err := sql.Query(lib, line)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	printResult(out, books, time.Since(start))
}

func printResult(out io.Writer, books []common.Book, took time.Duration) {
	if took > 0 {
		fmt.Fprintf(out, "Found %d records (%v):\n", len(books), took)
	} else {
		fmt.Fprintf(out, "Found %d records:\n", len(books))
	}
	for i, b := range books {
		if i >= 20 {
			fmt.Fprintf(out, "... and %d more\n", len(books)-20)
			break
		}
		fmt.Fprintf(out, "  %s\n", b)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `
Commands:
  add <title>|<author>|<year>   Insert a book
  rm <title>|<author>|<year>    Remove one matching book
  title <title>                 Books with this title
  author <author>               Books by this author
  year <year>                   Books from this year
  range <low> <high>            Books from low..high (inclusive)
  select * from books ...       Run a query
  list                          All books in insertion order
  exit                          Exit shell`)
}
