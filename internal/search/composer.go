// Package search composes free-text queries and categorical filters over
// in-memory collections. Matching is conjunctive across dimensions, there is
// no relevance ranking, and source order is preserved.
package search

import "strings"

// Predicate is one categorical filter dimension. An unset dimension should
// simply not be passed to Compose.
type Predicate[T any] func(T) bool

// Compose returns the items matching the query and every predicate.
// A record matches the query when it is empty, or when any of the record's
// text fields contains it case-insensitively.
func Compose[T any](items []T, query string, textFields func(T) []string, predicates ...Predicate[T]) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesQuery(item, query, textFields) {
			continue
		}
		if !matchesAll(item, predicates) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Equals builds a predicate that passes when the filter value is unset or
// equals the record's field.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		return value == "" || field(item) == value
	}
}

// Contains builds a predicate that passes when the filter value is unset or
// is a member of the record's set-valued field.
func Contains[T any](value string, field func(T) []string) Predicate[T] {
	return func(item T) bool {
		if value == "" {
			return true
		}
		for _, v := range field(item) {
			if v == value {
				return true
			}
		}
		return false
	}
}

func matchesQuery[T any](item T, query string, textFields func(T) []string) bool {
	if query == "" {
		return true
	}
	for _, f := range textFields(item) {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}
