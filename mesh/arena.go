package mesh

// arena is a slot-stable, free-list-backed slab allocator: an index
// handed out by alloc never moves, and is only ever reused after release,
// so a live index refers to the same logical slot for its entire
// lifetime. This is the "arena-and-index" pattern — the Go-native
// rendering of slot-stable allocation without pointer arithmetic.
type arena[T any] struct {
	slots []arenaSlot[T]
	free  []int32
	desc  Descriptor[T]
}

type arenaSlot[T any] struct {
	payload T
	alive   bool
}

func newArena[T any](desc Descriptor[T]) *arena[T] {
	return &arena[T]{desc: desc}
}

// alloc reserves a slot, reusing a freed one when available, and returns
// its index. It fails only when the arena must grow and the descriptor's
// Alloc hook (if any) rejects the new slot.
func (a *arena[T]) alloc() (int32, error) {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = arenaSlot[T]{payload: a.desc.seedPayload(), alive: true}
		return idx, nil
	}
	payload, err := a.desc.newPayload()
	if err != nil {
		return 0, err
	}
	a.slots = append(a.slots, arenaSlot[T]{payload: payload, alive: true})
	return int32(len(a.slots) - 1), nil
}

// release destroys the payload at idx (running the descriptor's Destroy
// hook) and returns the slot to the free list. Releasing an already-dead
// slot is a no-op.
func (a *arena[T]) release(idx int32) {
	s := &a.slots[idx]
	if !s.alive {
		return
	}
	a.desc.destroy(s.payload)
	var zero T
	*s = arenaSlot[T]{payload: zero, alive: false}
	a.free = append(a.free, idx)
}

func (a *arena[T]) live(idx int32) bool {
	return idx >= 0 && int(idx) < len(a.slots) && a.slots[idx].alive
}

func (a *arena[T]) data(idx int32) T { return a.slots[idx].payload }

func (a *arena[T]) setData(idx int32, v T) { a.slots[idx].payload = v }

// each calls fn once for every live index, in slot order (unspecified to
// callers — the arena may reuse freed slots in any order).
func (a *arena[T]) each(fn func(idx int32)) {
	for i := range a.slots {
		if a.slots[i].alive {
			fn(int32(i))
		}
	}
}

func (a *arena[T]) count() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].alive {
			n++
		}
	}
	return n
}

// clear destroys every live payload and empties the arena.
func (a *arena[T]) clear() {
	for i := range a.slots {
		if a.slots[i].alive {
			a.desc.destroy(a.slots[i].payload)
		}
	}
	a.slots = nil
	a.free = nil
}
