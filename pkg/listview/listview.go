// Package listview implements the list shaping shared by the resource
// tables: sort the fetched collection, then slice it into fixed-size
// pages. Sort keys are typed accessor functions chosen from a closed
// per-resource map, never runtime key paths.
package listview

import (
	"sort"
	"strings"
	"time"
)

// PageSize is the fixed number of rows per table page.
const PageSize = 10

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Compare is a three-way comparator over two items. Equal keys return
// 0, so re-sorting an already-sorted list never reorders ties.
type Compare[T any] func(a, b T) int

// ByString builds a comparator from a string accessor.
func ByString[T any](f func(T) string) Compare[T] {
	return func(a, b T) int {
		return strings.Compare(f(a), f(b))
	}
}

// ByInt builds a comparator from an integer accessor.
func ByInt[T any](f func(T) int) Compare[T] {
	return func(a, b T) int {
		av, bv := f(a), f(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByFloat builds a comparator from a float accessor.
func ByFloat[T any](f func(T) float64) Compare[T] {
	return func(a, b T) int {
		av, bv := f(a), f(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByTime builds a comparator from a time accessor.
func ByTime[T any](f func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		av, bv := f(a), f(b)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		default:
			return 0
		}
	}
}

// Sort returns a sorted copy of items. The sort is stable: equal keys
// keep their input order, in both directions. A nil comparator returns
// the copy unsorted.
func Sort[T any](items []T, cmp Compare[T], dir Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return cmp(out[i], out[j]) > 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

// Pages returns the number of pages needed for n items. An empty
// collection still renders one (empty) page.
func Pages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate returns the 1-based page of items. Pages before the first
// clamp to page 1; pages past the end come back empty.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
