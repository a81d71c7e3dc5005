package sim

// MapQueue is the ordered, consumable supply of upcoming course slices.
// It is consumed strictly front to back, exactly one slice per resolved
// turn. Emptiness is a normal, observable terminal condition.
//
// A queue is owned by a single simulation; construct one per run with
// NewMapQueue rather than sharing an instance. The zero value is unusable
// and panics on use, which surfaces setup bugs immediately.
type MapQueue struct {
	grids []Grid
	ready bool
}

// NewMapQueue creates a queue over the given ordered slice sequence.
// The slice is copied so later mutations of the argument cannot reorder
// the course.
func NewMapQueue(grids []Grid) *MapQueue {
	q := &MapQueue{
		grids: make([]Grid, len(grids)),
		ready: true,
	}
	copy(q.grids, grids)
	return q
}

// Next returns the head slice. With consume true the head is removed,
// otherwise this is a peek. An absent slot signals the course is exhausted.
func (q *MapQueue) Next(consume bool) Slot {
	q.mustBeReady()
	if len(q.grids) == 0 {
		return AbsentSlot()
	}
	head := q.grids[0]
	if consume {
		q.grids = q.grids[1:]
	}
	return PresentSlot(head)
}

// Len reports how many slices remain.
func (q *MapQueue) Len() int {
	q.mustBeReady()
	return len(q.grids)
}

func (q *MapQueue) mustBeReady() {
	if q == nil || !q.ready {
		panic("sim: map queue used before initialization; construct it with NewMapQueue")
	}
}
