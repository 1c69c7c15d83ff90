package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName sorts items by name using the root Unicode collation.
// Names that collate equally are ordered by identity so the result does not depend on input order.
func SortByName[T Loadable](items []T) {
	// A Collator keeps scratch buffers, so it is not shared between calls.
	c := collate.New(language.Und)
	slices.SortStableFunc(items, func(a, b T) int {
		if r := c.CompareString(a.Name(), b.Name()); r != 0 {
			return r
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
}
