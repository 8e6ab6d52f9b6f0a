package vector

// Add is the representation-agnostic entry point for vector addition. It
// branches on the representation predicates of a and b and calls the
// specialization implementing that pair. A nil operand yields a clone of
// the other.
func Add(a, b Vector) Vector {
	if a == nil && b == nil {
		return nil
	}
	if b == nil {
		return a.Clone()
	}
	if a == nil {
		return b.Clone()
	}

	switch av := a.(type) {
	case *OneHot:
		// OneHot never owns an add specialization of its own; commute so
		// the other operand's specialization handles the pair, unless
		// both sides are OneHot.
		if bv, ok := b.(*OneHot); ok {
			return NewSparse(2).AddOneHot(av).AddOneHot(bv)
		}
		return Add(b, av)
	case *Sparse:
		switch bv := b.(type) {
		case *Sparse:
			return av.AddSparse(bv)
		case *OneHot:
			return av.AddOneHot(bv)
		case *Dense:
			return av.AddDense(bv)
		}
	case *Dense:
		switch bv := b.(type) {
		case *Dense:
			return av.AddDense(bv)
		case *Sparse:
			return bv.AddDense(av)
		case *OneHot:
			return av.AddOneHot(bv)
		}
	}
	return nil
}

// Incr is the representation-agnostic entry point for the weighted
// in-place fold dst += weight*src. It branches on the representation of
// dst: a Dense destination scatter-adds in place (dropping any src index
// beyond its length, and doing nothing at all for a size-mismatched Dense
// src — both are documented, silent no-ops, not errors); a Sparse
// destination always rebuilds into a freshly sized buffer. A nil src is a
// no-op; dst is returned unchanged for convenient chaining.
func Incr(dst Vector, src Vector, weight float64) Vector {
	if dst == nil || src == nil {
		return dst
	}
	switch d := dst.(type) {
	case *Dense:
		switch s := src.(type) {
		case *Dense:
			return d.IncrDense(s, weight)
		case *Sparse:
			return d.IncrSparse(s, weight)
		case *OneHot:
			return d.IncrSparse(s, weight)
		}
	case *Sparse:
		switch s := src.(type) {
		case *Sparse:
			return d.Incr(s, weight)
		case *OneHot:
			return d.Incr(s, weight)
		case *Dense:
			return d.Incr(s, weight)
		}
	case *OneHot:
		// A OneHot destination cannot accept a second nonzero without
		// promotion, which is the caller's responsibility; Incr on a
		// OneHot destination is unsupported and left as a no-op.
		return d
	}
	return dst
}
