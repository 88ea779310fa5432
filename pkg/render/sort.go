package render

import (
	"cmp"
	"slices"
)

// SortByDepth orders triangles far to near by mean Z, so painting them in
// order lets nearer faces overwrite farther ones. Equal depths keep their
// input order.
func SortByDepth(tris []Triangle) {
	slices.SortStableFunc(tris, func(a, b Triangle) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
}
