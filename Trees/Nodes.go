package Trees

import "math"

// ref is an index into the node arena. 0 is the nil ref.
type ref = uint32

// entry is a node in the BSTree arena.
// l and r own their subtrees; p is only a back link, it never owns anything and is
// only followed when re-linking during removal.
// For a free entry, l is the next free ref.
type entry[K any, V any] struct {
	k       K
	v       V
	l, r, p ref
}

// arena holds all the entries of a tree. ns[0] is the nil entry and never holds data.
type arena[K any, V any] struct {
	ns   []entry[K, V]
	free ref // head of the free list, linked through entry.l.
}

func makeArena[K any, V any](initCap uint) arena[K, V] {
	return arena[K, V]{ns: make([]entry[K, V], 1, initCap+1)}
}

// get the entry at i. The pointer is invalidated by alloc.
func (u *arena[K, V]) get(i ref) *entry[K, V] {
	return &u.ns[i]
}

// addFree entry a once. The key and value are zeroed so they can be collected.
func (u *arena[K, V]) addFree(a ref) {
	u.ns[a] = entry[K, V]{l: u.free}
	u.free = a
}

// popFree entry once. Returns 0 when there's no free entry.
func (u *arena[K, V]) popFree() ref {
	b := u.free
	u.free = u.ns[u.free].l
	return b
}

// alloc a new entry holding k and v with parent p.
func (u *arena[K, V]) alloc(k K, v V, p ref) ref {
	if i := u.popFree(); i != 0 {
		u.ns[i] = entry[K, V]{k: k, v: v, p: p}
		return i
	}
	if uint64(len(u.ns)) > math.MaxUint32 {
		panic("Trees: arena is full")
	}
	u.ns = append(u.ns, entry[K, V]{k: k, v: v, p: p})
	return ref(len(u.ns) - 1)
}

// reset drops every entry but the nil entry, keeping the allocated memory.
func (u *arena[K, V]) reset() {
	clear(u.ns)
	u.ns = u.ns[:1]
	u.free = 0
}
