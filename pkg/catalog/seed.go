package catalog

import (
	"shelfdb/pkg/common"
	"shelfdb/pkg/core"
)

// SeedData returns the five books of the exercise catalog.
func SeedData() []common.Book {
	return []common.Book{
		{Title: "Name1", Author: "Author1", Year: 2011},
		{Title: "Name2", Author: "Author2", Year: 2012},
		{Title: "Name3", Author: "Author2", Year: 2013},
		{Title: "Name4", Author: "Author4", Year: 2014},
		{Title: "Name5", Author: "Author1", Year: 2015},
	}
}

// Populate adds books to lib in order.
func Populate(lib core.Library, books []common.Book) {
	for _, b := range books {
		lib.AddBook(b)
	}
}
