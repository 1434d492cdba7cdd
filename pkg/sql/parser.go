package sql

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"shelfdb/pkg/common"
	"shelfdb/pkg/core"
)

// TableName is the only table a query may select from.
const TableName = "books"

// SelectStmt represents a parsed SELECT * FROM books statement.
type SelectStmt struct {
	Table string
	Where *WhereClause
	Limit int
}

// WhereClause is a single condition. Year conditions are normalised into the
// inclusive range [Low, High]; Op keeps the operator as written.
type WhereClause struct {
	Field string
	Op    string
	Value string
	Low   int
	High  int
}

var (
	selectRe  = regexp.MustCompile(`(?is)^SELECT\s+\*\s+FROM\s+([a-zA-Z_][a-zA-Z0-9_]*)(?:\s+WHERE\s+(.+?))?(?:\s+LIMIT\s+(\d+))?\s*$`)
	stringRe  = regexp.MustCompile(`(?is)^(title|author)\s*=\s*(?:'([^']*)'|"([^"]*)")$`)
	betweenRe = regexp.MustCompile(`(?i)^year\s+BETWEEN\s+(-?\d+)\s+AND\s+(-?\d+)$`)
	yearRe    = regexp.MustCompile(`(?i)^year\s*(=|>=|<=|>|<)\s*(-?\d+)$`)
)

// Parse parses:
// "SELECT * FROM books"
// "SELECT * FROM books WHERE author = 'Author1'"
// "SELECT * FROM books WHERE title = \"Name1\""
// "SELECT * FROM books WHERE year = 2012"
// "SELECT * FROM books WHERE year BETWEEN 2011 AND 2014 LIMIT 3"
// "SELECT * FROM books WHERE year >= 2013"
func Parse(s string) (*SelectStmt, error) {
	orig := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
	if orig == "" {
		return nil, errors.New("empty query")
	}

	matches := selectRe.FindStringSubmatch(orig)
	if matches == nil {
		return nil, errors.New("syntax: expected SELECT * FROM books [WHERE <cond>] [LIMIT <n>]")
	}
	table := strings.ToLower(matches[1])
	if table != TableName {
		return nil, fmt.Errorf("unknown table %q", matches[1])
	}

	stmt := &SelectStmt{
		Table: table,
		Limit: -1,
	}

	if matches[2] != "" {
		where, err := parseWhere(strings.TrimSpace(matches[2]))
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if matches[3] != "" {
		limitVal, err := strconv.Atoi(matches[3])
		if err != nil || limitVal < 0 {
			return nil, errors.New("invalid LIMIT value")
		}
		stmt.Limit = limitVal
	}

	return stmt, nil
}

func parseWhere(cond string) (*WhereClause, error) {
	if m := stringRe.FindStringSubmatch(cond); m != nil {
		value := m[2]
		if m[3] != "" {
			value = m[3]
		}
		return &WhereClause{Field: strings.ToLower(m[1]), Op: "=", Value: value}, nil
	}

	if m := betweenRe.FindStringSubmatch(cond); m != nil {
		low, err1 := strconv.Atoi(m[1])
		high, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return nil, errors.New("invalid year value")
		}
		return &WhereClause{Field: "year", Op: "BETWEEN", Low: low, High: high}, nil
	}

	if m := yearRe.FindStringSubmatch(cond); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, errors.New("invalid year value")
		}
		w := &WhereClause{Field: "year", Op: m[1], Value: m[2], Low: math.MinInt, High: math.MaxInt}
		switch m[1] {
		case "=":
			w.Low, w.High = n, n
		case ">=":
			w.Low = n
		case "<=":
			w.High = n
		case ">":
			if n == math.MaxInt {
				w.Low, w.High = 1, 0
			} else {
				w.Low = n + 1
			}
		case "<":
			if n == math.MinInt {
				w.Low, w.High = 1, 0
			} else {
				w.High = n - 1
			}
		}
		return w, nil
	}

	return nil, fmt.Errorf("unsupported WHERE condition %q", cond)
}

// Execute maps the statement onto a single library operation.
func (stmt *SelectStmt) Execute(lib core.Library) []common.Book {
	var rows []common.Book
	switch {
	case stmt.Where == nil:
		rows = lib.All()
	case stmt.Where.Field == "title":
		rows = lib.SearchByName(stmt.Where.Value)
	case stmt.Where.Field == "author":
		rows = lib.SearchByAuthor(stmt.Where.Value)
	case stmt.Where.Op == "=":
		rows = lib.SearchByYear(stmt.Where.Low)
	default:
		rows = lib.GetBooksFromInterval(stmt.Where.Low, stmt.Where.High)
	}

	if stmt.Limit >= 0 && len(rows) > stmt.Limit {
		rows = rows[:stmt.Limit]
	}
	return rows
}

// Query parses and executes s against lib.
func Query(lib core.Library, s string) ([]common.Book, error) {
	stmt, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return stmt.Execute(lib), nil
}
