package database

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"
)

// Gateway is the single component that issues SQL against the relational
// store. Every method is a synchronous round trip on the shared connection;
// there is no timeout, retry or backoff.
type Gateway struct {
	db *gorm.DB
}

// NewGateway wraps an open database handle.
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// ExecuteUpdate runs a statement that produces no result rows
// (INSERT, UPDATE, DELETE, DDL).
func (g *Gateway) ExecuteUpdate(query string, args ...interface{}) error {
	return g.db.Exec(query, args...).Error
}

// QueryRows runs a query and returns every row as an ordered slice of
// column values rendered as text. NULL columns come back as empty strings.
// An empty result set returns a nil slice, not an error.
func (g *Gateway) QueryRows(query string, args ...interface{}) ([][]string, error) {
	_, rows, err := g.queryStrings(query, args...)
	return rows, err
}

// RowCount runs a query and returns only the number of rows it produces.
// Used for existence checks.
func (g *Gateway) RowCount(query string, args ...interface{}) (int, error) {
	rows, err := g.QueryRows(query, args...)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// CurrSeqVal returns the current value of the named database sequence,
// or -1 when the sequence has no current value or cannot be read.
func (g *Gateway) CurrSeqVal(sequence string) (int, error) {
	var val int
	result := g.db.Raw(fmt.Sprintf("SELECT currval('%s')", sequence)).Scan(&val)
	if result.Error != nil {
		return -1, result.Error
	}
	if result.RowsAffected == 0 {
		return -1, nil
	}
	return val, nil
}

// DumpQuery runs a query and writes a column-header line followed by one
// tab-separated line per row to w. It returns the number of rows written.
func (g *Gateway) DumpQuery(w io.Writer, query string, args ...interface{}) (int, error) {
	cols, rows, err := g.queryStrings(query, args...)
	if err != nil {
		return 0, err
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return len(rows), nil
}

// queryStrings is the shared scan loop: every column of every row is read
// back as text.
func (g *Gateway) queryStrings(query string, args ...interface{}) ([]string, [][]string, error) {
	rows, err := g.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var result [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]interface{}, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, nil, err
		}
		record := make([]string, len(cols))
		for i, v := range values {
			record[i] = v.String
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return cols, result, nil
}
