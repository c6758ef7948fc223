package quote

import "strings"

// Contains reports whether any phrase has query in its author (byAuthor) or
// text, ignoring case.
func (q Quote) Contains(query string, byAuthor bool) bool {
	query = strings.ToLower(query)
	for _, p := range q.Dialogue {
		field := p.Text
		if byAuthor {
			field = p.Author
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Filter returns the quotes that contain query, keeping their order.
func Filter(quotes []Quote, query string, byAuthor bool) []Quote {
	var matched []Quote
	for _, q := range quotes {
		if q.Contains(query, byAuthor) {
			matched = append(matched, q)
		}
	}
	return matched
}
