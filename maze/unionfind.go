package maze

// DisjointSet partitions the integers [0, n) into mergeable components.
// It uses path compression and union by rank, so Find and Union are
// nearly O(1) amortized.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet creates n singleton sets, one per element.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DisjointSet{
		parent: parent,
		rank:   rank,
	}
}

// Find returns the representative of the set containing x. The lookup is
// iterative: one walk up to the root, then a second walk re-pointing
// every visited element directly at it.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the sets containing x and y, attaching the shorter tree
// under the taller one. Equal ranks attach y's root under x's root and
// bump x's rank. It reports whether a merge happened; false means the
// two elements already shared a component.
func (d *DisjointSet) Union(x, y int) bool {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	return true
}
