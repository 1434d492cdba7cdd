package core

import (
	"shelfdb/pkg/common"
	"shelfdb/pkg/monitor"
)

// Library 抽象接口，屏蔽索引实现与线性扫描实现的差异。
// 所有查询返回新的切片，没有匹配时返回空切片而不是 nil。
// Library is not safe for concurrent use.
type Library interface {
	AddBook(book common.Book)
	RemoveBook(book common.Book)
	SearchByName(title string) []common.Book
	SearchByAuthor(author string) []common.Book
	SearchByYear(year int) []common.Book
	GetBooksFromInterval(low, high int) []common.Book

	// All returns every stored record in insertion order.
	All() []common.Book
	Len() int
	Strategy() string
	// Verify checks that every index agrees with the primary collection.
	Verify() error
	Stats() map[string]interface{}
	Monitor() *monitor.WorkloadStats
}
