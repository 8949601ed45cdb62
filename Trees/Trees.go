package Trees

// Tree represents an ordered key-value tree implemented using nodes.
// Receivers that has a bool as the last return value indicates whether
// the other return values are defined. For example, if calling Minimum on
// an empty tree, the return value will be (k K, v V, false bool). In this
// case k and v are zero values and shouldn't be used.
// Receivers returning an error report a miss through a typed error instead:
// *KeyNotFoundError for lookups, *OutOfRangeError for ranks.
// None of the implementations are safe for concurrent use; callers must
// synchronize externally if the tree is shared.
type Tree[K any, V any] interface {
	//Insert k with value v. Whether an existing k is replaced or kept
	//depends on implementation.
	Insert(k K, v V)
	//Find the value associated with k.
	Find(k K) (V, error)
	//Remove one entry with key k.
	Remove(k K) error
	//Has an entry with key k.
	Has(k K) bool
	//Minimum entry of the tree.
	Minimum() (K, V, bool)
	//Maximum entry of the tree.
	Maximum() (K, V, bool)
	//KthLargest returns the value of the k-th largest key.
	//1<=k<=Size().
	KthLargest(k uint) (V, error)
	//Size of the tree.
	Size() uint
	//Height is the number of edges from the root to the deepest leaf.
	Height() (uint, bool)
	//Ascend calls f on each entry in ascending key order until f returns false.
	//The tree must not be modified during the iteration.
	Ascend(f func(k K, v V) bool)
	//InOrder returns the values in ascending key order.
	InOrder() []V
	//PreOrder returns the values with each node before its subtrees.
	PreOrder() []V
	//PostOrder returns the values with each node after its subtrees.
	PostOrder() []V
	//BFS returns the values level by level, left to right.
	BFS() []V
	//IsBST reports whether the in-order sequence of keys is non-decreasing.
	IsBST() bool
	//Corrupt returns whether the tree has corrupt structures, when the key
	//at some node violates the ordering or the links between nodes disagree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
	//Clear removes every entry.
	Clear()
}
