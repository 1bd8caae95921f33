package arena

import "github.com/google/btree"

// indexDegree is the B-tree fan-out; arena counts stay small, so a low degree keeps nodes compact.
const indexDegree = 8

// Index orders arenas by base address.
type Index struct {
	tree *btree.BTreeG[*Arena]
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		tree: btree.NewG(indexDegree, func(a, b *Arena) bool { return a.base < b.base }),
	}
}

// Insert adds an arena. Re-inserting the same base replaces the record.
func (ix *Index) Insert(a *Arena) {
	ix.tree.ReplaceOrInsert(a)
}

// Remove drops an arena and reports whether it was present.
func (ix *Index) Remove(a *Arena) bool {
	_, ok := ix.tree.Delete(a)
	return ok
}

// Find returns the arena containing addr.
func (ix *Index) Find(addr uintptr) (*Arena, bool) {
	var hit *Arena
	ix.tree.DescendLessOrEqual(&Arena{base: addr}, func(a *Arena) bool {
		hit = a
		return false
	})
	if hit == nil || !hit.Contains(addr) {
		return nil, false
	}
	return hit, true
}

// Len returns the number of arenas.
func (ix *Index) Len() int { return ix.tree.Len() }

// Ascend calls fn for every arena in address order until fn returns false.
func (ix *Index) Ascend(fn func(a *Arena) bool) {
	ix.tree.Ascend(func(a *Arena) bool { return fn(a) })
}

// All returns the arenas in address order.
func (ix *Index) All() []*Arena {
	out := make([]*Arena, 0, ix.tree.Len())
	ix.Ascend(func(a *Arena) bool {
		out = append(out, a)
		return true
	})
	return out
}
