package Trees

import (
	"slices"

	"github.com/g-m-twostay/go-bst/Queues"
)

// ascend calls f on entries in ascending key order until f returns false. st is a
// reusable stack buffer and may be nil; the possibly grown buffer is returned.
func (u *BSTree[K, V]) ascend(f func(*entry[K, V]) bool, st []ref) []ref {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ns[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(&u.ns[curI]) {
			break
		}
		for curI = u.ns[curI].r; curI != 0; curI = u.ns[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// descend is ascend mirrored.
func (u *BSTree[K, V]) descend(f func(*entry[K, V]) bool, st []ref) []ref {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ns[curI].r {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(&u.ns[curI]) {
			break
		}
		for curI = u.ns[curI].l; curI != 0; curI = u.ns[curI].r {
			st = append(st, curI)
		}
	}
	return st
}

// Ascend [Tree.Ascend]
// Time: amortized O(1) per entry; Space: O(D)
func (u *BSTree[K, V]) Ascend(f func(k K, v V) bool) {
	u.ascend(func(n *entry[K, V]) bool {
		return f(n.k, n.v)
	}, nil)
}

// InOrder [Tree.InOrder]. Left subtree, node, right subtree.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) InOrder() []V {
	vs := make([]V, 0, u.sz)
	u.ascend(func(n *entry[K, V]) bool {
		vs = append(vs, n.v)
		return true
	}, nil)
	return vs
}

// PreOrder [Tree.PreOrder]. Node, left subtree, right subtree.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) PreOrder() []V {
	vs := make([]V, 0, u.sz)
	if u.root == 0 {
		return vs
	}
	for st := []ref{u.root}; len(st) > 0; {
		n := &u.ns[st[len(st)-1]]
		st = st[:len(st)-1]
		vs = append(vs, n.v)
		if n.r != 0 {
			st = append(st, n.r)
		}
		if n.l != 0 {
			st = append(st, n.l)
		}
	}
	return vs
}

// PostOrder [Tree.PostOrder]. Left subtree, right subtree, node.
// It's computed as node, right, left and reversed.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) PostOrder() []V {
	vs := make([]V, 0, u.sz)
	if u.root == 0 {
		return vs
	}
	for st := []ref{u.root}; len(st) > 0; {
		n := &u.ns[st[len(st)-1]]
		st = st[:len(st)-1]
		vs = append(vs, n.v)
		if n.l != 0 {
			st = append(st, n.l)
		}
		if n.r != 0 {
			st = append(st, n.r)
		}
	}
	slices.Reverse(vs)
	return vs
}

// BFS [Tree.BFS]
// Time: O(n); Space: O(width)
func (u *BSTree[K, V]) BFS() []V {
	vs := make([]V, 0, u.sz)
	if u.root == 0 {
		return vs
	}
	q := Queues.MakeArrayQueue[ref](16)
	q.Enqueue(u.root)
	for i, err := q.Dequeue(); err == nil; i, err = q.Dequeue() {
		n := &u.ns[i]
		vs = append(vs, n.v)
		if n.l != 0 {
			q.Enqueue(n.l)
		}
		if n.r != 0 {
			q.Enqueue(n.r)
		}
	}
	return vs
}
