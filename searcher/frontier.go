package searcher

import "github.com/gammazero/deque"

// frontier holds discovered entries in insertion order. The deque serves
// FIFO and LIFO disciplines in O(1); popMin scans it linearly.
type frontier struct {
	entries deque.Deque[entry]
}

func newFrontier() *frontier {
	return &frontier{}
}

func (f *frontier) Len() int {
	return f.entries.Len()
}

// at returns the i-th oldest entry
func (f *frontier) at(i int) entry {
	return f.entries.At(i)
}

func (f *frontier) push(e entry) {
	f.entries.PushBack(e)
}

// popFront removes the oldest entry.
func (f *frontier) popFront() entry {
	return f.entries.PopFront()
}

// popBack removes the newest entry.
func (f *frontier) popBack() entry {
	return f.entries.PopBack()
}

// removeAt removes the i-th oldest entry, keeping the others in order.
func (f *frontier) removeAt(i int) entry {
	return f.entries.Remove(i)
}

// popMin removes the first entry holding the lowest priority.
func (f *frontier) popMin() entry {
	if f.Len() == 0 {
		panic("pop from empty frontier")
	}
	minIndex := 0
	minPriority := f.at(0).priority
	for i := 1; i < f.Len(); i++ {
		if p := f.at(i).priority; p < minPriority {
			minPriority = p
			minIndex = i
		}
	}
	return f.removeAt(minIndex)
}
