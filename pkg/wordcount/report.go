package wordcount

import (
	"bufio"
	"fmt"
	"io"
)

type Report struct {
	K    int
	Top  []WordCount
	Last []WordCount
}

func (c *Counter) Report(k int) Report {
	return Report{K: k, Top: c.Top(k), Last: c.Bottom(k)}
}

// WriteTo prints both rankings as "word: count" lines under their headers.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(format string, args ...interface{}) {
		m, _ := fmt.Fprintf(bw, format, args...)
		n += int64(m)
	}

	write("Top %d words\n", r.K)
	for _, wc := range r.Top {
		write("%s: %d\n", wc.Word, wc.Count)
	}
	write("Last %d words\n", r.K)
	for _, wc := range r.Last {
		write("%s: %d\n", wc.Word, wc.Count)
	}
	return n, bw.Flush()
}
