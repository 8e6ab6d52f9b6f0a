package buffer

// inlineReservoir is the number of elements a Builder stores inline before
// switching to heap storage, matching the original template's typical
// instantiation (BufferBuilder<T,16>).
const inlineReservoir = 16

// growthLargeThreshold and growthMediumThreshold gate the three-tier
// amortized growth policy; see doc.go for the formulas they select.
const (
	growthLargeThreshold  = 200_000_000
	growthMediumThreshold = 1_000_000
)

// Builder is an append-only, amortized-growth buffer of T. The zero value
// is ready to use.
//
// Builder is not safe for concurrent use; see ParallelBuilder for a
// reader/writer-locked variant.
type Builder[T any] struct {
	local      [inlineReservoir]T
	data       []T
	usingLocal bool
	initOnce   bool
}

// init lazily wires data to point at the inline reservoir the first time
// the Builder is touched, so the zero value needs no constructor.
func (b *Builder[T]) init() {
	if b.initOnce {
		return
	}
	b.data = b.local[:0]
	b.usingLocal = true
	b.initOnce = true
}

// NewBuilder returns an empty, ready-to-use Builder.
//
// Complexity: O(1).
func NewBuilder[T any]() *Builder[T] {
	b := &Builder[T]{}
	b.init()
	return b
}

// Size returns the number of elements currently held.
func (b *Builder[T]) Size() int {
	b.init()
	return len(b.data)
}

// Capacity returns the number of elements the backing store can hold
// before the next append forces a reallocation.
func (b *Builder[T]) Capacity() int {
	b.init()
	return cap(b.data)
}

// growTarget computes the next capacity for a buffer currently holding cs
// elements, per the amortized growth policy in doc.go.
func growTarget(cs int) int {
	switch {
	case cs > growthLargeThreshold:
		return 5 * cs / 4
	case cs > growthMediumThreshold:
		return 3 * cs / 2
	default:
		return 2*cs + 50
	}
}

// grow reallocates the backing store to hold at least newCap elements,
// copying existing contents. Capacity never shrinks implicitly.
func (b *Builder[T]) grow(newCap int) {
	if newCap <= cap(b.data) {
		return
	}
	fresh := make([]T, len(b.data), newCap)
	copy(fresh, b.data)
	b.data = fresh
	b.usingLocal = false
}

// Append adds a single value, amortized O(1).
func (b *Builder[T]) Append(v T) {
	b.init()
	if len(b.data) >= cap(b.data) {
		b.grow(growTarget(len(b.data)))
	}
	b.data = append(b.data, v)
}

// AppendN adds n copies of v.
//
// Complexity: O(n) amortized.
func (b *Builder[T]) AppendN(v T, n int) {
	if n <= 0 {
		return
	}
	b.init()
	cs := len(b.data)
	if cs+n > cap(b.data) {
		newCap := growTarget(cs)
		if newCap < cs+n {
			newCap = 5 * (cs + n) / 4
		}
		b.grow(newCap)
	}
	for i := 0; i < n; i++ {
		b.data = append(b.data, v)
	}
}

// AppendBuilder concatenates the contents of other onto b.
func (b *Builder[T]) AppendBuilder(other *Builder[T]) {
	b.init()
	other.init()
	grow := len(other.data)
	if grow == 0 {
		return
	}
	cs := len(b.data)
	if cs+grow > cap(b.data) {
		newCap := cs + grow
		if grow <= cs {
			newCap = cs
		}
		newCap = growTarget(newCap)
		if newCap < cs+grow {
			newCap = cs + grow
		}
		b.grow(newCap)
	}
	b.data = append(b.data, other.data...)
}

// Read parses one scalar from the head of *cursor via parse and, on
// success, appends it. It reports whether a value was read.
//
// parse is typically one of the scalarconv.Parse* functions.
func (b *Builder[T]) Read(cursor *string, parse func(cursor *string, out *T) bool) bool {
	var v T
	if !parse(cursor, &v) {
		return false
	}
	b.Append(v)
	return true
}

// Reverse reverses the contents in place.
func (b *Builder[T]) Reverse() {
	b.init()
	for i, j := 0, len(b.data)-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
}

// Clear resets the Builder to empty, releasing any heap storage and
// reverting to the inline reservoir.
func (b *Builder[T]) Clear() {
	b.data = b.local[:0]
	b.usingLocal = true
	b.initOnce = true
}

// Move detaches the internal buffer, transferring ownership to the caller
// and resetting the Builder to empty. If storage is still the inline
// reservoir, Move allocates a heap copy first so the returned slice
// outlives the Builder.
func (b *Builder[T]) Move() []T {
	b.init()
	var out []T
	if b.usingLocal {
		out = make([]T, len(b.data))
		copy(out, b.data)
	} else {
		out = b.data
	}
	b.Clear()
	return out
}

// Finalize copies the current contents into a new exact-sized slice,
// without resetting the Builder.
func (b *Builder[T]) Finalize() []T {
	b.init()
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}
