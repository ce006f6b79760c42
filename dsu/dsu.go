package dsu

import "fmt"

// DisjointSet is a partition of {0, …, n-1} into disjoint sets.
//
// parent[i] == i marks i as a root; size[r] is meaningful only for roots and
// holds the number of elements in r's tree.
type DisjointSet struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}

// New constructs n singleton sets identified 0..n-1.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns n, the number of elements in the universe.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative of the set containing x.
//
// Every node on the walk from x to the root is re-pointed directly at the
// root, so repeated calls on the same path are O(1).
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	// 1. Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Second pass: compress the path.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root, nil
}

// Union merges the sets rooted at rx and ry.
//
// Both arguments must be representatives, i.e. values previously returned by
// Find with no Union in between touching them. The smaller tree is attached
// under the larger one; on equal sizes ry goes under rx.
// Complexity: O(1).
func (d *DisjointSet) Union(rx, ry int) error {
	if err := d.checkRoot(rx); err != nil {
		return err
	}
	if err := d.checkRoot(ry); err != nil {
		return err
	}
	if rx == ry {
		return nil
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return nil
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
	}

	return nil
}

func (d *DisjointSet) checkRoot(x int) error {
	if err := d.check(x); err != nil {
		return err
	}
	if d.parent[x] != x {
		return fmt.Errorf("%w: %d", ErrNotRoot, x)
	}

	return nil
}
