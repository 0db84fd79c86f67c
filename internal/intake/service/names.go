package service

import (
	"strings"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

// DeriveNames resolves a first and last name. Explicit values always win.
// When either is missing and a combined name is present, the combined name
// is split on single spaces: the first token fills a missing first name and
// the rest, rejoined, fills a missing last name. No trimming is applied, so
// " Jane" yields an empty first name and "Jane" as the last name.
func DeriveNames(combined, first, last string) (string, string) {
	if first != "" && last != "" {
		return first, last
	}
	if combined == "" {
		return first, last
	}

	head, rest, _ := strings.Cut(combined, " ")
	if first == "" {
		first = head
	}
	if last == "" {
		last = rest
	}
	return first, last
}

// ResolveNames applies DeriveNames to a normalized record.
func ResolveNames(rec domain.NormalizedRecord) domain.Names {
	first, last := DeriveNames(rec.Name, rec.FirstName, rec.LastName)
	return domain.Names{First: first, Last: last}
}
