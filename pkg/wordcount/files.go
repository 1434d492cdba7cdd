package wordcount

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
)

// CountFiles counts every file concurrently and merges the results in
// argument order. The first I/O error cancels the rest and is returned with
// no partial counter.
func CountFiles(ctx context.Context, alphabet string, paths ...string) (*Counter, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("wordcount: no input files")
	}
	if _, err := NewCounter(alphabet); err != nil {
		return nil, fmt.Errorf("wordcount: %w", err)
	}

	parts := make([]*Counter, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			c, err := countFile(ctx, alphabet, path)
			if err != nil {
				return fmt.Errorf("wordcount: read %s: %w", path, err)
			}
			parts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total, _ := NewCounter(alphabet)
	for _, p := range parts {
		total.Merge(p)
	}
	log.Printf("[WordCount] Counted %d words (%d distinct) in %d file(s)", total.Total(), total.Distinct(), len(paths))
	return total, nil
}

func countFile(ctx context.Context, alphabet, path string) (*Counter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := NewCounter(alphabet)
	if err != nil {
		return nil, err
	}
	if err := c.Count(f); err != nil {
		return nil, err
	}
	return c, nil
}
