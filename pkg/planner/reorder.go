package planner

import "tableflip.dev/weekplan/pkg/item"

// Reorder returns a copy of list with the element at from moved to to.
// Indices are clamped: from into [0, len-1], to into [0, len]. A to equal to
// len means "after the last element".
func Reorder(list []item.Item, from, to int) []item.Item {
	out := item.Copy(list)
	if len(out) == 0 {
		return out
	}
	from = clamp(from, 0, len(out)-1)
	to = clamp(to, 0, len(out))

	moved := out[from]
	rest := append(out[:from:from], out[from+1:]...)
	if to > len(rest) {
		to = len(rest)
	}

	result := make([]item.Item, 0, len(out))
	result = append(result, rest[:to]...)
	result = append(result, moved)
	result = append(result, rest[to:]...)
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
