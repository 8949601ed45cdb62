package Trees

import (
	"log/slog"

	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree mapping keys to values. Keys that
// compare less than a node go to its left subtree, all others, including equal
// keys, go to its right subtree. Inserting an existing key therefore adds a
// second entry instead of replacing the first; Find and Remove act on the entry
// closest to the root.
// Nothing rebalances the tree, so D, the height, is O(n) for sorted insertions
// and O(log n) on average for random ones. No method recurses, so large D
// doesn't grow the call stack.
// Nodes are kept in an arena and linked by index. An empty tree has root==0.
// A BSTree is not safe for concurrent use.
type BSTree[K constraints.Ordered, V any] struct {
	arena[K, V]
	root ref
	sz   uint
}

// New returns an empty BSTree with room for initCap entries before reallocating.
func New[K constraints.Ordered, V any](initCap uint) *BSTree[K, V] {
	return &BSTree[K, V]{arena: makeArena[K, V](initCap)}
}

// NewRooted returns a BSTree holding the single entry (k, v).
func NewRooted[K constraints.Ordered, V any](k K, v V) *BSTree[K, V] {
	u := New[K, V](1)
	u.Insert(k, v)
	return u
}

// Size returns the number of entries.
// Time: O(1); Space: O(1)
func (u *BSTree[K, V]) Size() uint {
	return u.sz
}

// Insert [Tree.Insert]. Never replaces an existing entry.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Insert(k K, v V) {
	u.sz++
	if u.root == 0 {
		u.root = u.alloc(k, v, 0)
		return
	}
	for cur := u.root; ; {
		// alloc may move the arena, so entries are addressed by index after it.
		if n := u.get(cur); k < n.k {
			if n.l == 0 {
				i := u.alloc(k, v, cur)
				u.ns[cur].l = i
				return
			}
			cur = n.l
		} else {
			if n.r == 0 {
				i := u.alloc(k, v, cur)
				u.ns[cur].r = i
				return
			}
			cur = n.r
		}
	}
}

// find the ref of the entry with key k closest to the root. Returns 0 if there's none.
func (u *BSTree[K, V]) find(k K) ref {
	for cur := u.root; cur != 0; {
		if n := u.get(cur); k == n.k {
			return cur
		} else if k < n.k {
			cur = n.l
		} else {
			cur = n.r
		}
	}
	return 0
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Find(k K) (V, error) {
	if i := u.find(k); i != 0 {
		return u.ns[i].v, nil
	}
	return *new(V), &KeyNotFoundError[K]{k}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Has(k K) bool {
	return u.find(k) != 0
}

// Remove [Tree.Remove]. The entry is located before anything is modified, so a
// miss leaves the tree untouched.
// An entry with two children takes the key and value of its successor, the
// leftmost entry of its right subtree, and the successor is unlinked instead.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Remove(k K) error {
	cur := u.find(k)
	if cur == 0 {
		return &KeyNotFoundError[K]{k}
	}
	if n := u.get(cur); n.l != 0 && n.r != 0 {
		s := n.r
		for u.ns[s].l != 0 {
			s = u.ns[s].l
		}
		n.k, n.v = u.ns[s].k, u.ns[s].v
		cur = s
	}
	// cur has at most one child here.
	c := u.ns[cur].l
	if c == 0 {
		c = u.ns[cur].r
	}
	u.replaceWith(cur, c)
	u.addFree(cur)
	u.sz--
	return nil
}

// replaceWith puts c, which may be 0, in the place of n. The slot is chosen by
// comparing refs, not keys, so equal keys can't confuse it. n is left detached.
func (u *BSTree[K, V]) replaceWith(n, c ref) {
	p := u.ns[n].p
	if p == 0 {
		u.root = c
	} else if u.ns[p].l == n {
		u.ns[p].l = c
	} else {
		u.ns[p].r = c
	}
	if c != 0 {
		u.ns[c].p = p
	}
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Minimum() (K, V, bool) {
	if u.root == 0 {
		return *new(K), *new(V), false
	}
	cur := u.root
	for u.ns[cur].l != 0 {
		cur = u.ns[cur].l
	}
	return u.ns[cur].k, u.ns[cur].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Maximum() (K, V, bool) {
	if u.root == 0 {
		return *new(K), *new(V), false
	}
	cur := u.root
	for u.ns[cur].r != 0 {
		cur = u.ns[cur].r
	}
	return u.ns[cur].k, u.ns[cur].v, true
}

// KthLargest [Tree.KthLargest]
// This is the value at index Size()-k of InOrder(). The walk runs in descending
// order and stops at the k-th entry instead of materializing the whole sequence.
// k==0 or k>Size() logs a warning and returns *OutOfRangeError.
// Time: O(D+k); Space: O(D)
func (u *BSTree[K, V]) KthLargest(k uint) (V, error) {
	if k == 0 || k > u.sz {
		diag().Warn("k exceeds the size of the tree", slog.Uint64("k", uint64(k)), slog.Uint64("size", uint64(u.sz)))
		return *new(V), &OutOfRangeError{k, u.sz}
	}
	var r V
	u.descend(func(n *entry[K, V]) bool {
		k--
		if k == 0 {
			r = n.v
			return false
		}
		return true
	}, nil)
	return r, nil
}

// Height [Tree.Height]
// A single entry has height 0. Returns (0, false) on an empty tree.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) Height() (uint, bool) {
	if u.root == 0 {
		return 0, false
	}
	type frame struct {
		i ref
		d uint
	}
	var h uint
	for st := []frame{{u.root, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		n := u.get(f.i)
		if n.l == 0 && n.r == 0 {
			h = max(h, f.d)
			continue
		}
		if n.l != 0 {
			st = append(st, frame{n.l, f.d + 1})
		}
		if n.r != 0 {
			st = append(st, frame{n.r, f.d + 1})
		}
	}
	return h, true
}

// IsBST [Tree.IsBST]
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) IsBST() bool {
	ok, first := true, true
	var prev K
	u.ascend(func(n *entry[K, V]) bool {
		if !first && n.k < prev {
			ok = false
			return false
		}
		prev, first = n.k, false
		return true
	}, nil)
	return ok
}

// Corrupt [Tree.Corrupt]
// Besides the ordering, it checks that every child links back to its parent, that
// the root has no parent, and that the number of reachable entries is Size().
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) Corrupt() bool {
	if !u.IsBST() {
		return true
	}
	if u.root == 0 {
		return u.sz != 0
	}
	if u.ns[u.root].p != 0 {
		return true
	}
	var cnt uint
	for st := []ref{u.root}; len(st) > 0; {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		cnt++
		for _, c := range [2]ref{u.ns[i].l, u.ns[i].r} {
			if c != 0 {
				if u.ns[c].p != i {
					return true
				}
				st = append(st, c)
			}
		}
	}
	return cnt != u.sz
}

// Clear removes every entry, keeping the memory of the arena.
// Time: O(n)
func (u *BSTree[K, V]) Clear() {
	u.reset()
	u.root, u.sz = 0, 0
}
