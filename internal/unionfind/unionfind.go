package unionfind

// DSU is a disjoint-set forest over the dense integer range [0, n).
// It is not safe for concurrent use; callers own their own synchronization.
type DSU struct {
	parent []int32
	size   []int32
}

// New allocates a DSU of n singleton sets, each a representative of itself.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int32, n),
		size:   make([]int32, n),
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
		d.size[i] = 1
	}

	return d
}

// Find returns the representative (root) of x's set, compressing the path
// from x to the root as it walks up.
//
// Complexity: amortized O(α(n)).
func (d *DSU) Find(x int) int {
	root := int32(x)
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: re-point every visited node directly at root.
	for d.parent[x] != root {
		x, d.parent[x] = int(d.parent[x]), root
	}

	return int(root)
}

// Union merges the sets containing a and b, attaching the smaller set's root
// under the larger set's root. Ties are broken in favor of the lower root ID,
// matching the spec's determinism requirement for merges.
//
// Returns the resulting root and whether a merge actually happened (false if
// a and b were already in the same set).
//
// Complexity: amortized O(α(n)).
func (d *DSU) Union(a, b int) (root int, merged bool) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return ra, false
	}
	// Union by size: the smaller tree hangs off the larger one. On a tie,
	// the lower-ID root survives, matching the spec's "lower id wins".
	if d.size[ra] < d.size[rb] || (d.size[ra] == d.size[rb] && rb < ra) {
		ra, rb = rb, ra
	}
	d.parent[rb] = int32(ra)
	d.size[ra] += d.size[rb]

	return ra, true
}

// SetSize overrides the size recorded for x's own set. Only meaningful
// before any Union involving x has happened; used to seed a DSU whose
// singleton "sets" start out already weighted (e.g. region voxel counts),
// rather than the uniform weight-1 singletons New assumes.
//
// Complexity: O(1).
func (d *DSU) SetSize(x, size int) {
	d.size[x] = int32(size)
}

// Size returns the number of elements in x's set.
//
// Complexity: amortized O(α(n)).
func (d *DSU) Size(x int) int {
	return int(d.size[d.Find(x)])
}

// Len returns the number of elements the DSU was built over.
func (d *DSU) Len() int {
	return len(d.parent)
}
