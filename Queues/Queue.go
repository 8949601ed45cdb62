package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	// Enqueue item at the tail. Never fails.
	Enqueue(item T)
	// Dequeue removes and returns the head item. Returns EmptyQueueError if there's nothing to remove.
	Dequeue() (T, error)
	// Peek at the head item without removing it. The second return value is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Dequeue."
}
