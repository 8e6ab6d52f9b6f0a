package vector

// Dense is a fully materialized vector: element i of the logical vector
// is values[i] for i in [0, size). Elements beyond size but within
// capacity are unspecified but reachable by SetElement without a
// reallocation.
type Dense struct {
	base
	values   []float64
	size     int
}

// NewDense returns an empty Dense vector with the given capacity hint.
//
// Complexity: O(capacity).
func NewDense(capacity int) *Dense {
	d := &Dense{base: newBase()}
	if capacity > 0 {
		d.values = make([]float64, capacity)
	}
	return d
}

func (d *Dense) IsSparse() bool   { return false }
func (d *Dense) IsOneHot() bool   { return false }
func (d *Dense) IsDense() bool    { return true }
func (d *Dense) TypeName() string { return "DenseVector" }

func (d *Dense) NumElements() int             { return d.size }
func (d *Dense) ElementIndex(i int) uint32    { return uint32(i) }
func (d *Dense) ElementValue(i int) float64   { return d.values[i] }
func (d *Dense) Capacity() int                { return cap(d.values) }

// Reserve grows the backing store to hold at least n elements, preserving
// contents. Capacity never shrinks implicitly.
func (d *Dense) Reserve(n int) bool {
	if n <= cap(d.values) {
		return true
	}
	fresh := make([]float64, n)
	copy(fresh, d.values[:d.size])
	d.startModifying()
	d.values = fresh
	d.doneModifying()
	return true
}

// SetElement writes value at logical index i, auto-growing the backing
// store (to max(i+1, 2*capacity)) and extending size if i is beyond the
// current size.
func (d *Dense) SetElement(i int, value float64) {
	if i >= cap(d.values) {
		target := i + 1
		if 2*cap(d.values) > target {
			target = 2 * cap(d.values)
		}
		if !d.Reserve(target) {
			return
		}
	}
	if i >= d.size {
		d.size = i + 1
	}
	d.values[i] = value
}

// Length returns the cached L2 norm, recomputing on a cache miss.
func (d *Dense) Length() float64 {
	return d.cachedLength(func() float64 {
		sum := 0.0
		for i := 0; i < d.size; i++ {
			v := d.values[i]
			sum += v * v
		}
		return sum
	})
}

// Scale multiplies every stored element by factor.
func (d *Dense) Scale(factor float64) {
	d.startModifying()
	defer d.doneModifying()
	for i := 0; i < d.size; i++ {
		d.values[i] *= factor
	}
}

// Normalize divides every element by Length(); a no-op when length <= 0.
func (d *Dense) Normalize() {
	l := d.Length()
	if l <= 0 {
		return
	}
	d.startModifying()
	defer d.doneModifying()
	for i := 0; i < d.size; i++ {
		d.values[i] /= l
	}
}

// Clone returns an independent copy.
func (d *Dense) Clone() Vector {
	c := &Dense{base: d.cloneMeta()}
	c.values = make([]float64, d.size)
	copy(c.values, d.values[:d.size])
	c.size = d.size
	return c
}

// AddDense returns a new Dense of length max(len(this), len(other)),
// pair-summing the overlap and copying the tail from whichever operand
// is longer. A nil other yields a clone.
func (d *Dense) AddDense(other *Dense) *Dense {
	if other == nil {
		return d.Clone().(*Dense)
	}
	n := d.size
	if other.size > n {
		n = other.size
	}
	minLen := d.size
	if other.size < minLen {
		minLen = other.size
	}
	result := NewDense(n)
	result.size = n
	for i := 0; i < minLen; i++ {
		result.values[i] = d.values[i] + other.values[i]
	}
	for i := d.size; i < n; i++ {
		result.values[i] = other.values[i]
	}
	for i := other.size; i < n; i++ {
		result.values[i] = d.values[i]
	}
	return result
}

// IncrDense adds w*other[i] into this for i in [0, min(len(this),
// len(other))). A size mismatch is a silent, documented no-op beyond the
// shorter prefix: it neither grows nor truncates the destination.
func (d *Dense) IncrDense(other *Dense, w float64) *Dense {
	if other == nil {
		return d
	}
	d.startModifying()
	defer d.doneModifying()
	n := d.size
	if other.size < n {
		n = other.size
	}
	for i := 0; i < n; i++ {
		d.values[i] += w * other.values[i]
	}
	return d
}

// AddOneHot clones this vector and adds the one-hot's single element,
// growing the clone if necessary.
func (d *Dense) AddOneHot(other *OneHot) *Dense {
	c := d.Clone().(*Dense)
	idx := int(other.index)
	if idx >= c.size {
		c.SetElement(idx, c.valueAt(idx)+other.value)
	} else {
		c.values[idx] += other.value
	}
	return c
}

func (d *Dense) valueAt(i int) float64 {
	if i < d.size {
		return d.values[i]
	}
	return 0
}

// IncrSparse adds (optionally weighted) each stored pair of other whose
// index falls within this vector's length; indices beyond the current
// length are dropped (documented: Dense never auto-grows on Incr).
func (d *Dense) IncrSparse(other sparseLike, weight float64) *Dense {
	d.startModifying()
	defer d.doneModifying()
	for i := 0; i < other.NumElements(); i++ {
		idx := int(other.ElementIndex(i))
		if idx >= d.size {
			continue
		}
		d.values[idx] += weight * other.ElementValue(i)
	}
	return d
}

// sparseLike is the minimal read surface IncrSparse and AddSparse need
// from a sparse-shaped operand (Sparse or OneHot).
type sparseLike interface {
	NumElements() int
	ElementIndex(i int) uint32
	ElementValue(i int) float64
}
