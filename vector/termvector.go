package vector

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/vecspace/scalarconv"
)

// TermVector is a Sparse vector whose Weight field is reinterpreted as a
// term frequency (the count of observations folded into it via Incr),
// rather than the generic 1.0 default every other vector carries. Nothing
// distinguishes its storage from a plain Sparse; VectorFreq/SetVectorFreq
// exist only to make that reinterpretation explicit at call sites instead
// of reading "Weight" where "frequency" is meant.
type TermVector struct {
	*Sparse
}

// NewTermVector returns an empty TermVector with the given capacity hint
// and a frequency of 0.
func NewTermVector(capacity int) *TermVector {
	tv := &TermVector{Sparse: NewSparse(capacity)}
	tv.SetWeight(0)
	return tv
}

func (t *TermVector) TypeName() string { return "TermVector" }

// VectorFreq returns the number of observations folded into this vector.
func (t *TermVector) VectorFreq() float64 { return t.Weight() }

// SetVectorFreq overwrites the observation count.
func (t *TermVector) SetVectorFreq(freq float64) { t.SetWeight(freq) }

// IncrFreq adds delta to the observation count, the bookkeeping companion
// to folding a new observation into the vector itself via Incr.
func (t *TermVector) IncrFreq(delta float64) { t.SetWeight(t.Weight() + delta) }

// TermCountVector is TermVector's integer-counted twin, named after the
// original's TermVectorT<uint32_t> specialization: the same sparse
// (index, value) storage, but every value is understood to hold a whole
// observation count rather than a frequency weight. NewCountElement/
// ElementCount round-trip through the shared float64 storage so the type
// stays a plain Sparse underneath, same as TermVector.
type TermCountVector struct {
	*Sparse
}

// NewTermCountVector returns an empty TermCountVector with the given
// capacity hint.
func NewTermCountVector(capacity int) *TermCountVector {
	return &TermCountVector{Sparse: NewSparse(capacity)}
}

func (t *TermCountVector) TypeName() string { return "TermCountVector" }

// ElementCount returns the count stored at position i, truncated to
// uint32.
func (t *TermCountVector) ElementCount(i int) uint32 {
	return uint32(t.ElementValue(i))
}

// NewCountElement inserts (index, count) keeping indices sorted, the
// integer-count analog of Sparse.NewElement.
func (t *TermCountVector) NewCountElement(index uint32, count uint32) bool {
	return t.NewElement(index, float64(count))
}

// ReadTermVector reads whitespace-separated "index:value" pairs from src up
// to a '>' terminator or EOF, matching the textual vector form's closing
// delimiter and the original's CharGetter-driven reader. A pair with no
// ":value" suffix defaults its value to 0. It returns a freshly built
// TermVector and whether the read succeeded; a parse failure partway
// through still returns true with the pairs read so far, matching the
// original's best-effort read semantics, but a failure on the very first
// pair reports false.
func ReadTermVector(src *bufio.Reader) (*TermVector, bool) {
	text, err := src.ReadString('>')
	if err != nil && err != io.EOF {
		return nil, false
	}
	text = strings.TrimSuffix(text, ">")

	tv := NewTermVector(0)
	if !readTermVectorPairs(text, tv) {
		return nil, false
	}
	return tv, true
}

// readTermVectorPairs appends each "index[:value]" pair in s to tv in the
// order encountered via setElement (the caller is responsible for supplying
// pairs in increasing index order; it does not resort).
func readTermVectorPairs(s string, tv *TermVector) bool {
	n := 0
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}
		field := s
		if sp := strings.IndexAny(field, " \t"); sp >= 0 {
			field = field[:sp]
			s = s[len(field):]
		} else {
			s = ""
		}
		idxPart, valPart, hasValue := strings.Cut(field, ":")
		var idx uint32
		idxCursor := idxPart
		if !scalarconv.ParseUint32(&idxCursor, &idx) {
			return n > 0
		}
		value := 0.0
		if hasValue {
			valCursor := valPart
			if !scalarconv.ParseFloat64(&valCursor, &value) {
				return n > 0
			}
		}
		tv.setElement(n, idx, value)
		n++
	}
	return true
}
