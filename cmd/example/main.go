package main

import (
	"fmt"
	"log"

	"shelfdb/pkg/catalog"
	"shelfdb/pkg/config"
	"shelfdb/pkg/core"
)

func main() {
	lib, err := core.NewLibrary(config.Default().Library)
	if err != nil {
		log.Fatalf("Failed to create library: %v", err)
	}
	catalog.Populate(lib, catalog.SeedData())

	for _, b := range lib.SearchByAuthor("Author4") {
		fmt.Println(b)
	}
	fmt.Println()
	for _, b := range lib.GetBooksFromInterval(2011, 2014) {
		fmt.Println(b)
	}
}
