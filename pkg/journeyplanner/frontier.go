package journeyplanner

import "container/heap"

// frontierItem is a discovered-but-not-finalized station awaiting expansion.
// A station may sit in the frontier several times with different f values;
// only the best one matters, stale ones are skipped on pop.
type frontierItem struct {
	stationID string
	fScore    float64
	sequence  int
}

// frontier orders items by f = g + h, breaking ties by insertion order so
// identical inputs always produce identical routes.
type frontier struct {
	items    []frontierItem
	sequence int
}

func (f *frontier) add(stationID string, fScore float64) {
	heap.Push(f, frontierItem{
		stationID: stationID,
		fScore:    fScore,
		sequence:  f.sequence,
	})
	f.sequence += 1
}

func (f *frontier) next() (frontierItem, bool) {
	if len(f.items) == 0 {
		return frontierItem{}, false
	}

	return heap.Pop(f).(frontierItem), true
}

func (f *frontier) empty() bool {
	return len(f.items) == 0
}

// container/heap interface

func (f *frontier) Len() int {
	return len(f.items)
}

func (f *frontier) Less(i int, j int) bool {
	a := f.items[i]
	b := f.items[j]

	if a.fScore != b.fScore {
		return a.fScore < b.fScore
	}

	return a.sequence < b.sequence
}

func (f *frontier) Swap(i int, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := f.items
	item := old[len(old)-1]
	f.items = old[:len(old)-1]

	return item
}
