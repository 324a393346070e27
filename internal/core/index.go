package core

import "sort"

// NewCompanyIndex keys companies by id. A repeated id replaces the earlier
// record; the replaced ids are returned in input order so callers can report them.
func NewCompanyIndex(companies []Company) (CompanyIndex, []int) {
	index := make(CompanyIndex, len(companies))
	var duplicates []int
	for _, c := range companies {
		if _, seen := index[c.ID]; seen {
			duplicates = append(duplicates, c.ID)
		}
		index[c.ID] = c
	}
	return index, duplicates
}

// SortedIDs returns the indexed company ids in ascending order.
func (idx CompanyIndex) SortedIDs() []int {
	ids := make([]int, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
