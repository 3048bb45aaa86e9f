package app

import "strings"

const defaultTraceQueryLimit = 512

// queryTraceFormatter collapses whitespace and caps the query text attached
// to DB spans, so multi-line builder output stays readable in trace viewers.
// The limit comes from DB_TRACE_QUERY_MAX.
func queryTraceFormatter(limit int) func(string) string {
	if limit <= 0 {
		limit = defaultTraceQueryLimit
	}
	return func(query string) string {
		normalized := strings.Join(strings.Fields(query), " ")
		if len(normalized) <= limit {
			return normalized
		}
		return normalized[:limit] + "..."
	}
}
