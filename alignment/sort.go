package alignment

import "sort"

// CountKey is the record's ordering key: (insertions, mutations, deletions).
// Batches sort ascending lexicographically on it, so closer matches come
// first.
func (r *Record) CountKey() [3]int {
	return [3]int{r.insertions, r.mutations, r.deletions}
}

// SortRecords sorts records in place, ascending by CountKey. The sort is
// stable: records with equal keys keep their relative order.
func SortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].CountKey(), records[j].CountKey()
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}
