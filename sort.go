package wordtally

import "sort"

// finalize drains m into an Entries slice ordered per s. Tie-breaking
// among equal counts is unspecified and left to sort.Slice's
// non-stable ordering for Desc/Asc; SortUnsorted performs no sort at
// all and returns map-iteration order.
func finalize(m *TallyMap, s Sort) Entries {
	entries := make(Entries, 0, m.Len())
	m.Range(func(w Word, c Count) bool {
		entries = append(entries, Entry{Word: w, Count: c})
		return true
	})

	switch s {
	case SortDesc:
		sort.Slice(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	case SortAsc:
		sort.Slice(entries, func(i, j int) bool { return entries[i].Count < entries[j].Count })
	case SortUnsorted:
		// leave as-is
	}
	return entries
}
