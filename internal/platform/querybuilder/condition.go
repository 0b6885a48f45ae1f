package querybuilder

// Condition is one predicate of a WHERE clause. Top-level conditions are ANDed.
type Condition interface {
	render(w *writer)
}

type condFunc func(w *writer)

func (f condFunc) render(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return condFunc(func(w *writer) {
		w.write(column, " = ")
		w.bind(value)
	})
}

func IsNull(column string) Condition {
	return condFunc(func(w *writer) {
		w.write(column, " IS NULL")
	})
}

// In renders column IN (...). An empty set matches no rows.
func In(column string, values []any) Condition {
	return condFunc(func(w *writer) {
		if len(values) == 0 {
			w.write("1=0")
			return
		}
		w.write(column, " IN (")
		for i, v := range values {
			if i > 0 {
				w.write(", ")
			}
			w.bind(v)
		}
		w.write(")")
	})
}

// Expr embeds a raw fragment whose arguments are marked with '?'.
func Expr(expr string, values ...any) Condition {
	return condFunc(func(w *writer) {
		w.fragment(expr, values)
	})
}

func Or(conditions ...Condition) Condition {
	return condFunc(func(w *writer) {
		if len(conditions) == 0 {
			w.write("1=0")
			return
		}
		w.write("(")
		for i, c := range conditions {
			if i > 0 {
				w.write(" OR ")
			}
			c.render(w)
		}
		w.write(")")
	})
}
