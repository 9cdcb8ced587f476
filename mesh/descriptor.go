package mesh

import "fmt"

// Descriptor supplies the copy, destroy and format hooks for one element
// kind's opaque payload, plus an optional allocation hook. The zero
// Descriptor is valid: payloads default to T's zero value and no hook
// runs.
type Descriptor[T any] struct {
	// Copy runs when a new element is made, seeding its payload from T's
	// zero value. Most callers leave this nil and assign payload data
	// after the element is created via SetData.
	Copy func(T) T

	// Destroy runs once when an element is killed (including via Clear
	// or Exit), before its slot is returned to the free list.
	Destroy func(T)

	// Format renders a payload for Mesh.Dump. If nil, Dump falls back to
	// a generic representation.
	Format func(T) string

	// Equal reports whether two payloads are equivalent. Optional: the
	// mesh itself never calls it, but it's part of the descriptor
	// surface callers writing their own equality-sensitive checks (e.g.
	// tests comparing two meshes payload-by-payload) can rely on having
	// alongside Copy/Destroy/Format.
	Equal func(T, T) bool

	// Alloc, if set, is consulted only when a pool must grow — never
	// when reusing a slot from its free list — and lets a caller inject
	// allocation failure to exercise the all-or-nothing rollback
	// protocol of the Euler operators. A nil Alloc never fails.
	Alloc func() error
}

// newPayload seeds a payload for a slot obtained by growing the backing
// slice, consulting Alloc first.
func (d Descriptor[T]) newPayload() (T, error) {
	var zero T
	if d.Alloc != nil {
		if err := d.Alloc(); err != nil {
			return zero, err
		}
	}
	return d.seedPayload(), nil
}

// seedPayload seeds a payload for a slot reused from the free list. It
// never consults Alloc: reuse can't fail, it can only be refused by
// growth.
func (d Descriptor[T]) seedPayload() T {
	var zero T
	if d.Copy != nil {
		return d.Copy(zero)
	}
	return zero
}

func (d Descriptor[T]) destroy(v T) {
	if d.Destroy != nil {
		d.Destroy(v)
	}
}

func (d Descriptor[T]) format(v T) string {
	if d.Format != nil {
		return d.Format(v)
	}
	return fmt.Sprintf("%v", v)
}
