package postgres

import (
	"net/url"
	"strings"
)

const maxTracedQueryLength = 512

// DSN prepares a lib/pq connection url. With binaryParameters set it adds
// binary_parameters=yes, so unnamed statements skip the server-side prepare
// round trip and transaction-mode poolers keep working. An explicit value in
// the url wins. Keyword/value DSNs are returned untouched.
func DSN(raw string, binaryParameters bool) string {
	raw = strings.TrimSpace(raw)
	if !binaryParameters {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	if query.Get("binary_parameters") != "" {
		return raw
	}
	query.Set("binary_parameters", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// DatabaseName extracts the database from either a url or a keyword/value DSN.
func DatabaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `'"`)
		}
	}
	return ""
}

// TraceQuery flattens a statement onto one line for span attributes and cuts
// it at maxTracedQueryLength bytes.
func TraceQuery(query string) string {
	flat := strings.Join(strings.Fields(query), " ")
	if len(flat) <= maxTracedQueryLength {
		return flat
	}
	cut := maxTracedQueryLength
	for cut > 0 && !utf8RuneStart(flat[cut]) {
		cut--
	}
	return flat[:cut] + "..."
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
