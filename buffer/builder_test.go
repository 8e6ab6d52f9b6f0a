package buffer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecspace/buffer"
	"github.com/katalvlaran/vecspace/scalarconv"
)

func TestBuilder_AppendAndMove(t *testing.T) {
	r := require.New(t)
	var b buffer.Builder[int]
	for i := 0; i < 5; i++ {
		b.Append(i)
	}
	r.Equal(5, b.Size())
	out := b.Move()
	r.Equal([]int{0, 1, 2, 3, 4}, out)
	r.Equal(0, b.Size(), "Move resets the builder to empty")
}

func TestBuilder_MoveOfInlineStorageIsIndependentCopy(t *testing.T) {
	r := require.New(t)
	var b buffer.Builder[int]
	b.Append(1)
	b.Append(2)
	out := b.Move()
	b.Append(99) // mutating the builder after Move must not affect out
	r.Equal([]int{1, 2}, out)
}

func TestBuilder_AppendNGrowsAtLeastEnough(t *testing.T) {
	r := require.New(t)
	var b buffer.Builder[byte]
	b.AppendN('x', 1000)
	r.Equal(1000, b.Size())
	r.GreaterOrEqual(b.Capacity(), 1000)
}

func TestBuilder_AppendBuilderConcatenates(t *testing.T) {
	r := require.New(t)
	var a, other buffer.Builder[int]
	a.Append(1)
	a.Append(2)
	other.Append(3)
	other.Append(4)
	a.AppendBuilder(&other)
	r.Equal([]int{1, 2, 3, 4}, a.Finalize())
}

func TestBuilder_ReverseAndClear(t *testing.T) {
	r := require.New(t)
	var b buffer.Builder[int]
	b.Append(1)
	b.Append(2)
	b.Append(3)
	b.Reverse()
	r.Equal([]int{3, 2, 1}, b.Finalize())
	b.Clear()
	r.Equal(0, b.Size())
}

func TestBuilder_ReadAppendsParsedScalar(t *testing.T) {
	r := require.New(t)
	var b buffer.Builder[uint32]
	cursor := "7 8 9"
	for b.Read(&cursor, scalarconv.ParseUint32) {
		cursor = trimLeadingSpace(cursor)
	}
	r.Equal([]uint32{7, 8, 9}, b.Finalize())
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

func TestParallelBuilder_ConcurrentReserveAndSet(t *testing.T) {
	r := require.New(t)
	p := buffer.NewParallelBuilder[int]()

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(id int) {
			defer wg.Done()
			start := p.ReserveElements(1)
			p.SetElement(start, id)
		}(w)
	}
	wg.Wait()

	out := p.Move()
	r.Len(out, writers)
	seen := make(map[int]bool, writers)
	for _, v := range out {
		seen[v] = true
	}
	r.Len(seen, writers, "every writer's value must appear exactly once, no torn/lost writes")
}
