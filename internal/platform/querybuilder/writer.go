package querybuilder

import (
	"strconv"
	"strings"
)

// writer accumulates statement text together with its positional arguments.
type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) write(parts ...string) {
	for _, p := range parts {
		w.sql.WriteString(p)
	}
}

// bind records v and writes its $N placeholder.
func (w *writer) bind(v any) {
	w.args = append(w.args, v)
	w.sql.WriteByte('$')
	w.sql.WriteString(strconv.Itoa(len(w.args)))
}

// fragment copies expr, binding one value for every '?'. A '?' left over
// after values run out is written as is.
func (w *writer) fragment(expr string, values []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.sql.WriteByte(expr[i])
	}
}

func (w *writer) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.write(" WHERE ")
		} else {
			w.write(" AND ")
		}
		c.render(w)
	}
}

func (w *writer) result() (string, []any, error) {
	return w.sql.String(), w.args, nil
}
