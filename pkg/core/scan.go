package core

import (
	"fmt"
	"sort"

	"shelfdb/pkg/common"
	"shelfdb/pkg/monitor"
)

// ScanLibrary has no secondary indexes: every query is a predicate scan over
// the insertion-ordered slice. O(1) amortized AddBook, O(n) everything else;
// GetBooksFromInterval adds a stable sort of the m matches.
type ScanLibrary struct {
	setSemantics bool
	books        []common.Book
	stats        *monitor.WorkloadStats
}

func NewScanLibrary(setSemantics bool) *ScanLibrary {
	return &ScanLibrary{
		setSemantics: setSemantics,
		stats:        monitor.NewWorkloadStats(),
	}
}

func (l *ScanLibrary) AddBook(book common.Book) {
	if l.setSemantics && l.indexOf(book) >= 0 {
		return
	}
	l.books = append(l.books, book)
	l.stats.RecordAdd()
}

func (l *ScanLibrary) RemoveBook(book common.Book) {
	i := l.indexOf(book)
	if i < 0 {
		l.stats.RecordRemove(false)
		return
	}
	l.books = append(l.books[:i], l.books[i+1:]...)
	l.stats.RecordRemove(true)
}

func (l *ScanLibrary) indexOf(book common.Book) int {
	for i, b := range l.books {
		if b == book {
			return i
		}
	}
	return -1
}

func (l *ScanLibrary) filter(match func(common.Book) bool) []common.Book {
	res := []common.Book{}
	for _, b := range l.books {
		if match(b) {
			res = append(res, b)
		}
	}
	return res
}

func (l *ScanLibrary) SearchByName(title string) []common.Book {
	res := l.filter(func(b common.Book) bool { return b.Title == title })
	l.stats.RecordLookup(monitor.LookupTitle, len(res))
	return res
}

func (l *ScanLibrary) SearchByAuthor(author string) []common.Book {
	res := l.filter(func(b common.Book) bool { return b.Author == author })
	l.stats.RecordLookup(monitor.LookupAuthor, len(res))
	return res
}

func (l *ScanLibrary) SearchByYear(year int) []common.Book {
	res := l.filter(func(b common.Book) bool { return b.Year == year })
	l.stats.RecordLookup(monitor.LookupYear, len(res))
	return res
}

func (l *ScanLibrary) GetBooksFromInterval(low, high int) []common.Book {
	res := []common.Book{}
	if low <= high {
		res = l.filter(func(b common.Book) bool { return b.Year >= low && b.Year <= high })
		sort.SliceStable(res, func(i, j int) bool { return res[i].Year < res[j].Year })
	}
	l.stats.RecordLookup(monitor.LookupInterval, len(res))
	return res
}

func (l *ScanLibrary) All() []common.Book {
	return cloneBooks(l.books)
}

func (l *ScanLibrary) Len() int {
	return len(l.books)
}

func (l *ScanLibrary) Strategy() string {
	return StrategyScan
}

// Verify only checks the duplicate policy: the slice is the only collection.
func (l *ScanLibrary) Verify() error {
	if !l.setSemantics {
		return nil
	}
	seen := make(map[common.Book]struct{}, len(l.books))
	for _, b := range l.books {
		if _, dup := seen[b]; dup {
			return fmt.Errorf("primary: %v stored twice under set semantics", b)
		}
		seen[b] = struct{}{}
	}
	return nil
}

func (l *ScanLibrary) Stats() map[string]interface{} {
	return map[string]interface{}{
		"strategy":     StrategyScan,
		"duplicates":   policyName(l.setSemantics),
		"record_count": len(l.books),
		"rw_ratio":     l.stats.GetReadWriteRatio(),
	}
}

func (l *ScanLibrary) Monitor() *monitor.WorkloadStats {
	return l.stats
}
