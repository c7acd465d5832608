package domain

import "sort"

// Distribution maps a category (launch site or outcome label) to a record count.
type Distribution map[string]int

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Keys returns the categories in ascending order for deterministic rendering.
func (d Distribution) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
