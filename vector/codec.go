package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecspace/scalarconv"
)

// Render produces the textual form of v:
//
//	#<SparseVector:key:label:i1:v1 i2:v2 ...>
//	#<OneHotVector:key:label:i:v>
//	#<DenseVector:weight:label:v1 v2 ...>
//
// Dense uses weight in the second field (its elements carry no index of
// their own); Sparse and OneHot use key, since their elements are
// addressed by index and the textual form has no other place to carry an
// identity.
func Render(v Vector) string {
	var b strings.Builder
	b.WriteString("#<")
	b.WriteString(v.TypeName())
	b.WriteByte(':')
	switch t := v.(type) {
	case *Dense:
		b.WriteString(strconv.FormatFloat(t.Weight(), 'g', -1, 64))
		b.WriteByte(':')
		b.WriteString(t.Label())
		b.WriteByte(':')
		for i := 0; i < t.NumElements(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(t.ElementValue(i), 'g', -1, 64))
		}
	default:
		b.WriteString(v.Key())
		b.WriteByte(':')
		b.WriteString(v.Label())
		b.WriteByte(':')
		for i := 0; i < v.NumElements(); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatUint(uint64(v.ElementIndex(i)), 10))
			b.WriteByte(':')
			b.WriteString(strconv.FormatFloat(v.ElementValue(i), 'g', -1, 64))
		}
	}
	b.WriteByte('>')
	return b.String()
}

// Parse is the inverse of Render for the Sparse and Dense textual forms.
// OneHotVector renders and parses as a one-entry Sparse; a parsed
// OneHotVector literal becomes a Sparse with a single element, since the
// textual form carries no promise of single-entry-ness beyond what its
// entry count happens to be.
func Parse(text string) (Vector, bool) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "#<") || !strings.HasSuffix(s, ">") {
		return nil, false
	}
	s = s[2 : len(s)-1]

	typeEnd := strings.IndexByte(s, ':')
	if typeEnd < 0 {
		return nil, false
	}
	typeName := s[:typeEnd]
	rest := s[typeEnd+1:]

	secondEnd := strings.IndexByte(rest, ':')
	if secondEnd < 0 {
		return nil, false
	}
	second := rest[:secondEnd]
	rest = rest[secondEnd+1:]

	labelEnd := strings.IndexByte(rest, ':')
	var label, body string
	if labelEnd < 0 {
		label = rest
		body = ""
	} else {
		label = rest[:labelEnd]
		body = rest[labelEnd+1:]
	}

	switch typeName {
	case "DenseVector":
		weight, err := strconv.ParseFloat(second, 64)
		if err != nil {
			return nil, false
		}
		d := NewDense(0)
		d.SetWeight(weight)
		d.SetLabel(label)
		n := 0
		cursor := body
		for {
			cursor = strings.TrimLeft(cursor, " \t")
			if cursor == "" {
				break
			}
			var v float64
			if !scalarconv.ParseFloat64(&cursor, &v) {
				return nil, false
			}
			d.SetElement(n, v)
			n++
		}
		return d, true
	case "SparseVector", "OneHotVector":
		sp := NewSparse(0)
		sp.SetKey(second)
		sp.SetLabel(label)
		n := 0
		cursor := body
		for {
			cursor = strings.TrimLeft(cursor, " \t")
			if cursor == "" {
				break
			}
			field := cursor
			if sp2 := strings.IndexByte(field, ' '); sp2 >= 0 {
				field = field[:sp2]
				cursor = cursor[len(field):]
			} else {
				cursor = ""
			}
			idxPart, valPart, hasValue := strings.Cut(field, ":")
			var idx uint32
			idxCursor := idxPart
			if !scalarconv.ParseUint32(&idxCursor, &idx) {
				return nil, false
			}
			val := 0.0
			if hasValue {
				valCursor := valPart
				if !scalarconv.ParseFloat64(&valCursor, &val) {
					return nil, false
				}
			}
			sp.setElement(n, idx, val)
			n++
		}
		return sp, true
	default:
		return nil, false
	}
}

// MarshalText implements encoding.TextMarshaler for any Vector wrapped in
// a Literal, producing the same textual form Render does.
type Literal struct{ Vector }

func (l Literal) MarshalText() ([]byte, error) {
	return []byte(Render(l.Vector)), nil
}

// MarshalJSON encodes the vector's textual form as a JSON string.
func (l Literal) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", Render(l.Vector))), nil
}

// UnmarshalJSON decodes a JSON string holding a vector's textual form.
func (l *Literal) UnmarshalJSON(data []byte) error {
	var text string
	if err := jsonUnquote(data, &text); err != nil {
		return err
	}
	v, ok := Parse(text)
	if !ok {
		return ErrParse
	}
	l.Vector = v
	return nil
}

func jsonUnquote(data []byte, out *string) error {
	s := strings.TrimSpace(string(data))
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return err
	}
	*out = unquoted
	return nil
}
