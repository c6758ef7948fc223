package quote

import "sort"

// AuthorCount is the number of quotes an author appears in.
type AuthorCount struct {
	Author string
	Count  int
}

// Tally is a per-author count report sorted by author name.
type Tally struct {
	Authors []AuthorCount
	Total   int
}

// CountByAuthor counts, for each author, the quotes they speak in. An author
// speaking several times in one quote counts once for it. Names are compared
// exactly.
func CountByAuthor(quotes []Quote) map[string]int {
	counts := make(map[string]int)
	for _, q := range quotes {
		for _, author := range q.Authors() {
			counts[author]++
		}
	}
	return counts
}

// TallyAuthors builds a sorted report from CountByAuthor.
func TallyAuthors(quotes []Quote) Tally {
	counts := CountByAuthor(quotes)

	authors := make([]string, 0, len(counts))
	for author := range counts {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	tally := Tally{Authors: make([]AuthorCount, 0, len(authors))}
	for _, author := range authors {
		tally.Authors = append(tally.Authors, AuthorCount{Author: author, Count: counts[author]})
		tally.Total += counts[author]
	}
	return tally
}
