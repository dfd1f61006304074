// Package disjoint implements a fixed-size disjoint-set forest (union-find)
// with union by size and path halving.
package disjoint

// DisjointSet partitions the elements 0..n-1 into disjoint groups. Groups
// can only be merged, never split.
//
// Find, Connected, SizeOf and Groups look like queries but shorten parent
// chains as they walk them. None of the methods is safe for concurrent use,
// wrap the set in a Synchronized if it is shared.
type DisjointSet struct {
	parent []int
	// size is only meaningful at roots
	size  []int
	count int
}

// Group is one equivalence class, identified by its current root.
type Group struct {
	Root    int
	Members []int
}

// New returns a set of n singleton groups. A zero or negative n yields an
// empty set where every index is out of range.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
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
	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint groups.
func (d *DisjointSet) Count() int {
	return d.count
}

func (d *DisjointSet) check(i int) error {
	if i < 0 || i >= len(d.parent) {
		return &IndexError{Index: i, Len: len(d.parent)}
	}
	return nil
}

// root assumes i is valid. Every visited node is pointed to its grandparent.
func (d *DisjointSet) root(i int) int {
	for i != d.parent[i] {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

// Find returns the root of the group containing i.
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}
	return d.root(i), nil
}

// Connected returns true if p and q belong to the same group.
func (d *DisjointSet) Connected(p, q int) (bool, error) {
	if err := d.check(p); err != nil {
		return false, err
	}
	if err := d.check(q); err != nil {
		return false, err
	}
	return d.root(p) == d.root(q), nil
}

// SizeOf returns the number of elements in the group containing i.
func (d *DisjointSet) SizeOf(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}
	return d.size[d.root(i)], nil
}

// Union merges the groups of p and q. The smaller group is attached under
// the root of the larger one, q's root goes under p's on ties. It returns
// false if p and q were already connected.
func (d *DisjointSet) Union(p, q int) (bool, error) {
	if err := d.check(p); err != nil {
		return false, err
	}
	if err := d.check(q); err != nil {
		return false, err
	}
	rp := d.root(p)
	rq := d.root(q)
	if rp == rq {
		return false, nil
	}
	if d.size[rp] < d.size[rq] {
		d.parent[rp] = rq
		d.size[rq] += d.size[rp]
	} else {
		d.parent[rq] = rp
		d.size[rp] += d.size[rq]
	}
	d.count--
	return true, nil
}

// Groups lists every group, ordered by their smallest member. Members are
// sorted in ascending order. Every element is looked up, shortening its
// parent chain.
func (d *DisjointSet) Groups() []Group {
	groups := make([]Group, 0, d.count)
	byRoot := make(map[int]int, d.count)
	for i := range d.parent {
		r := d.root(i)
		n, ok := byRoot[r]
		if !ok {
			n = len(groups)
			byRoot[r] = n
			groups = append(groups, Group{
				Root:    r,
				Members: make([]int, 0, d.size[r]),
			})
		}
		groups[n].Members = append(groups[n].Members, i)
	}
	return groups
}
