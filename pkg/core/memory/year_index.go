package memory

import (
	"shelfdb/pkg/common"

	"github.com/google/btree"
)

// Bucket holds every book published in one year, in insertion order.
type Bucket struct {
	Year  int
	Books []common.Book
}

func (b *Bucket) Less(than btree.Item) bool {
	return b.Year < than.(*Bucket).Year
}

// YearIndex 按年份有序的桶索引，区间查询只访问区间内的非空桶
type YearIndex struct {
	tree  *btree.BTree
	count int
}

func NewYearIndex(degree int) *YearIndex {
	if degree < 2 {
		degree = 2
	}
	return &YearIndex{
		tree: btree.New(degree),
	}
}

func (yi *YearIndex) Add(book common.Book) {
	probe := &Bucket{Year: book.Year}
	if item := yi.tree.Get(probe); item != nil {
		bucket := item.(*Bucket)
		bucket.Books = append(bucket.Books, book)
	} else {
		probe.Books = []common.Book{book}
		yi.tree.ReplaceOrInsert(probe)
	}
	yi.count++
}

// Remove drops the earliest occurrence of book. Empty buckets are deleted.
func (yi *YearIndex) Remove(book common.Book) bool {
	item := yi.tree.Get(&Bucket{Year: book.Year})
	if item == nil {
		return false
	}
	bucket := item.(*Bucket)
	for i, b := range bucket.Books {
		if b == book {
			bucket.Books = append(bucket.Books[:i], bucket.Books[i+1:]...)
			yi.count--
			if len(bucket.Books) == 0 {
				yi.tree.Delete(bucket)
			}
			return true
		}
	}
	return false
}

func (yi *YearIndex) Get(year int) []common.Book {
	item := yi.tree.Get(&Bucket{Year: year})
	if item == nil {
		return []common.Book{}
	}
	books := item.(*Bucket).Books
	out := make([]common.Book, len(books))
	copy(out, books)
	return out
}

// Range returns books with low <= year <= high, ascending by year.
func (yi *YearIndex) Range(low, high int) []common.Book {
	result := []common.Book{}
	if low > high {
		return result
	}
	yi.tree.AscendGreaterOrEqual(&Bucket{Year: low}, func(i btree.Item) bool {
		bucket := i.(*Bucket)
		if bucket.Year > high {
			return false
		}
		result = append(result, bucket.Books...)
		return true
	})
	return result
}

func (yi *YearIndex) Iterator(fn func(year int, books []common.Book) bool) {
	yi.tree.Ascend(func(i btree.Item) bool {
		bucket := i.(*Bucket)
		return fn(bucket.Year, bucket.Books)
	})
}

// Count 返回索引中的记录总数（含重复）
func (yi *YearIndex) Count() int {
	return yi.count
}

// Years returns the number of non-empty buckets.
func (yi *YearIndex) Years() int {
	return yi.tree.Len()
}
