package search

import (
	"slices"
	"strings"
	"unicode"
)

// Tokenize lowercases s and splits it on anything that is not a letter or digit.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TextScore counts the distinct query terms found in the document's guest name,
// reference, confirmation number or searchable text. Zero means no match.
func TextScore(d Document, query string) int {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return 0
	}
	slices.Sort(terms)
	terms = slices.Compact(terms)

	vocabulary := make(map[string]struct{})
	for _, field := range []string{d.GuestName, d.BookingReference, d.ConfirmationNumber, d.SearchableText} {
		for _, tok := range Tokenize(field) {
			vocabulary[tok] = struct{}{}
		}
	}

	score := 0
	for _, term := range terms {
		if _, ok := vocabulary[term]; ok {
			score++
		}
	}
	return score
}

// RankByText keeps matching documents ordered by score, then id.
func RankByText(docs []Document, query string) []Document {
	type scored struct {
		doc   Document
		score int
	}
	hits := make([]scored, 0, len(docs))
	for _, d := range docs {
		if s := TextScore(d, query); s > 0 {
			hits = append(hits, scored{doc: d, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return compareInt64(a.doc.ID, b.doc.ID)
	})

	out := make([]Document, len(hits))
	for i, h := range hits {
		out[i] = h.doc
	}
	return out
}
