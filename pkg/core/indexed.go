package core

import (
	"container/list"
	"fmt"

	"shelfdb/pkg/common"
	"shelfdb/pkg/core/memory"
	"shelfdb/pkg/core/structure"
	"shelfdb/pkg/monitor"
)

// IndexedLibrary keeps multi-valued hash indexes on title and author and a
// btree of year buckets. Every index bucket preserves insertion order.
//
// AddBook: O(1) amortized plus O(log Y) in the year tree.
// RemoveBook: O(bucket) per index.
// Field lookups: O(1) plus the copy of the result.
// GetBooksFromInterval: O(log Y + b + m), b non-empty years in range, m matches.
type IndexedLibrary struct {
	setSemantics bool

	seq   *list.List                       // insertion order
	elems map[common.Book][]*list.Element // FIFO of occurrences per value

	byTitle  map[string][]common.Book
	byAuthor map[string][]common.Book
	byYear   *memory.YearIndex

	bloom *structure.BloomFilter
	stats *monitor.WorkloadStats
}

func NewIndexedLibrary(degree int, bloomSize uint, bloomP float64, setSemantics bool) *IndexedLibrary {
	return &IndexedLibrary{
		setSemantics: setSemantics,
		seq:          list.New(),
		elems:        make(map[common.Book][]*list.Element),
		byTitle:      make(map[string][]common.Book),
		byAuthor:     make(map[string][]common.Book),
		byYear:       memory.NewYearIndex(degree),
		bloom:        structure.NewBloomFilter(bloomSize, bloomP),
		stats:        monitor.NewWorkloadStats(),
	}
}

func (l *IndexedLibrary) AddBook(book common.Book) {
	if l.setSemantics && len(l.elems[book]) > 0 {
		return
	}

	l.elems[book] = append(l.elems[book], l.seq.PushBack(book))
	l.byTitle[book.Title] = append(l.byTitle[book.Title], book)
	l.byAuthor[book.Author] = append(l.byAuthor[book.Author], book)
	l.byYear.Add(book)
	l.bloom.Add(book.Fingerprint())

	l.stats.RecordAdd()
}

func (l *IndexedLibrary) RemoveBook(book common.Book) {
	if !l.bloom.Contains(book.Fingerprint()) {
		l.stats.RecordRemove(false)
		return
	}
	occurrences := l.elems[book]
	if len(occurrences) == 0 {
		l.stats.RecordRemove(false)
		return
	}

	l.seq.Remove(occurrences[0])
	if len(occurrences) == 1 {
		delete(l.elems, book)
	} else {
		l.elems[book] = occurrences[1:]
	}
	removeFirst(l.byTitle, book.Title, book)
	removeFirst(l.byAuthor, book.Author, book)
	l.byYear.Remove(book)

	l.stats.RecordRemove(true)
}

// removeFirst drops the earliest occurrence of book under key and deletes
// the key once its bucket is empty.
func removeFirst(index map[string][]common.Book, key string, book common.Book) {
	bucket := index[key]
	for i, b := range bucket {
		if b == book {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(index, key)
		return
	}
	index[key] = bucket
}

func (l *IndexedLibrary) SearchByName(title string) []common.Book {
	res := cloneBooks(l.byTitle[title])
	l.stats.RecordLookup(monitor.LookupTitle, len(res))
	return res
}

func (l *IndexedLibrary) SearchByAuthor(author string) []common.Book {
	res := cloneBooks(l.byAuthor[author])
	l.stats.RecordLookup(monitor.LookupAuthor, len(res))
	return res
}

func (l *IndexedLibrary) SearchByYear(year int) []common.Book {
	res := l.byYear.Get(year)
	l.stats.RecordLookup(monitor.LookupYear, len(res))
	return res
}

func (l *IndexedLibrary) GetBooksFromInterval(low, high int) []common.Book {
	res := l.byYear.Range(low, high)
	l.stats.RecordLookup(monitor.LookupInterval, len(res))
	return res
}

func (l *IndexedLibrary) All() []common.Book {
	out := make([]common.Book, 0, l.seq.Len())
	for e := l.seq.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(common.Book))
	}
	return out
}

func (l *IndexedLibrary) Len() int {
	return l.seq.Len()
}

func (l *IndexedLibrary) Strategy() string {
	return StrategyIndexed
}

func (l *IndexedLibrary) Verify() error {
	want := make(map[common.Book]int, len(l.elems))
	total := 0
	for book, occ := range l.elems {
		if len(occ) == 0 {
			return fmt.Errorf("primary: empty occurrence list for %v", book)
		}
		want[book] = len(occ)
		total += len(occ)
	}
	if total != l.seq.Len() {
		return fmt.Errorf("primary: %d occurrences but %d sequenced records", total, l.seq.Len())
	}

	if err := verifyField("title", want, l.byTitle, func(b common.Book) string { return b.Title }); err != nil {
		return err
	}
	if err := verifyField("author", want, l.byAuthor, func(b common.Book) string { return b.Author }); err != nil {
		return err
	}

	got := make(map[common.Book]int, len(want))
	var yearErr error
	l.byYear.Iterator(func(year int, books []common.Book) bool {
		if len(books) == 0 {
			yearErr = fmt.Errorf("year index: empty bucket %d", year)
			return false
		}
		for _, b := range books {
			if b.Year != year {
				yearErr = fmt.Errorf("year index: %v filed under %d", b, year)
				return false
			}
			got[b]++
		}
		return true
	})
	if yearErr != nil {
		return yearErr
	}
	return compareCounts("year", want, got)
}

func verifyField(name string, want map[common.Book]int, index map[string][]common.Book, key func(common.Book) string) error {
	got := make(map[common.Book]int, len(want))
	for k, bucket := range index {
		if len(bucket) == 0 {
			return fmt.Errorf("%s index: empty bucket %q", name, k)
		}
		for _, b := range bucket {
			if key(b) != k {
				return fmt.Errorf("%s index: %v filed under %q", name, b, k)
			}
			got[b]++
		}
	}
	return compareCounts(name, want, got)
}

func compareCounts(name string, want, got map[common.Book]int) error {
	if len(want) != len(got) {
		return fmt.Errorf("%s index: %d distinct records, primary has %d", name, len(got), len(want))
	}
	for b, n := range want {
		if got[b] != n {
			return fmt.Errorf("%s index: %v appears %d times, primary has %d", name, b, got[b], n)
		}
	}
	return nil
}

func (l *IndexedLibrary) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"strategy":       StrategyIndexed,
		"duplicates":     policyName(l.setSemantics),
		"record_count":   l.seq.Len(),
		"distinct_count": len(l.elems),
		"title_keys":     len(l.byTitle),
		"author_keys":    len(l.byAuthor),
		"year_buckets":   l.byYear.Years(),
		"rw_ratio":       l.stats.GetReadWriteRatio(),
	}
	for k, v := range l.bloom.Stats() {
		stats[k] = v
	}
	return stats
}

func (l *IndexedLibrary) Monitor() *monitor.WorkloadStats {
	return l.stats
}

func cloneBooks(src []common.Book) []common.Book {
	out := make([]common.Book, len(src))
	copy(out, src)
	return out
}
