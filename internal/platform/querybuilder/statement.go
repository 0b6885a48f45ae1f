package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errNoTable = errors.New("table is required")

type SelectBuilder struct {
	table   string
	columns []string
	where   []Condition
	order   []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.order = append(b.order, terms...)
	return b
}

// Limit caps the row count. Zero or less means no limit.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select: %w", errNoTable)
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select %s: no columns", b.table)
	}

	var w writer
	w.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.where)
	if len(b.order) > 0 {
		w.write(" ORDER BY ", strings.Join(b.order, ", "))
	}
	if b.limit > 0 {
		w.write(" LIMIT ", strconv.Itoa(b.limit))
	}
	return w.result()
}

// pair is one column together with the value written to it.
type pair struct {
	column string
	value  any
}

type InsertBuilder struct {
	table string
	pairs []pair
}

func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Value(column string, value any) *InsertBuilder {
	b.pairs = append(b.pairs, pair{column: column, value: value})
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert: %w", errNoTable)
	}
	if len(b.pairs) == 0 {
		return "", nil, fmt.Errorf("insert %s: no values", b.table)
	}

	var w writer
	cols := make([]string, len(b.pairs))
	for i, p := range b.pairs {
		cols[i] = p.column
	}
	w.write("INSERT INTO ", b.table, " (", strings.Join(cols, ", "), ") VALUES (")
	for i, p := range b.pairs {
		if i > 0 {
			w.write(", ")
		}
		w.bind(p.value)
	}
	w.write(")")
	return w.result()
}

type UpdateBuilder struct {
	table string
	pairs []pair
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.pairs = append(b.pairs, pair{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses to build an UPDATE without a WHERE clause.
func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("update: %w", errNoTable)
	case len(b.pairs) == 0:
		return "", nil, fmt.Errorf("update %s: nothing to set", b.table)
	case len(b.where) == 0:
		return "", nil, fmt.Errorf("update %s: refusing to touch every row", b.table)
	}

	var w writer
	w.write("UPDATE ", b.table, " SET ")
	for i, p := range b.pairs {
		if i > 0 {
			w.write(", ")
		}
		w.write(p.column, " = ")
		w.bind(p.value)
	}
	w.where(b.where)
	return w.result()
}
