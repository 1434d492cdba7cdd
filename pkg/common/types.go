package common

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// Book 是库中存储的基本单元。三个字段全部相等即视为同一本书。
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
}

func NewBook(title, author string, year int) Book {
	return Book{Title: title, Author: author, Year: year}
}

func (b Book) Equal(other Book) bool {
	return b == other
}

// Fingerprint hashes all three fields; fields are NUL separated so that
// ("ab","c") and ("a","bc") differ.
func (b Book) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte(b.Title))
	h.Write([]byte{0})
	h.Write([]byte(b.Author))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(b.Year)))
	return h.Sum64()
}

// String 与演示程序的输出格式一致: "Name Author Year"
func (b Book) String() string {
	return fmt.Sprintf("%s %s %d", b.Title, b.Author, b.Year)
}
