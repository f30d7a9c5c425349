package pathscan

import "sort"

// Sort orders Exact and Related lexicographically by full path.
func (r *MatchResult) Sort() {
	sort.Strings(r.Exact)
	sort.Strings(r.Related)
}
