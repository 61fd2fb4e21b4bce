package numbuf

import (
	"github.com/hupe1980/numbuf/internal/mem"
)

// FromSequence copies an ordered numeric sequence into a new Buffer of
// matching size. A zero-length sequence yields a valid zero-size buffer.
//
// Recognized sequence types: []float32, []float64, []int, []int32,
// []int64. Wider values are narrowed with Go's float32 conversion,
// which rounds to the nearest representable single-precision value
// (round-to-nearest-even). Any other type fails with
// *ErrInvalidArgument.
//
// FromSequence and the direct sequence path of Dump produce
// byte-identical output for the same input.
func FromSequence(seq any) (*Buffer, error) {
	values, n, err := toScratch(seq)
	if err != nil {
		return nil, err
	}
	return &Buffer{values: values, size: n}, nil
}

// toScratch converts a sequence into a transient contiguous float32
// slice with no persistent identity. The input is always copied, never
// aliased, so the result can be handed straight to the dump engine.
//
// There is no upper bound on the sequence length beyond available
// memory.
func toScratch(seq any) ([]float32, int, error) {
	switch s := seq.(type) {
	case []float32:
		out := mem.AllocAlignedFloat32(len(s))
		copy(out, s)
		return out, len(s), nil
	case []float64:
		return narrow(s), len(s), nil
	case []int:
		return narrow(s), len(s), nil
	case []int32:
		return narrow(s), len(s), nil
	case []int64:
		return narrow(s), len(s), nil
	default:
		return nil, 0, &ErrInvalidArgument{Expected: "ordered numeric sequence", Value: seq}
	}
}

func narrow[T int | int32 | int64 | float64](s []T) []float32 {
	out := mem.AllocAlignedFloat32(len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}
