package numbuf

import "math"

// inputKind discriminates the runtime shape of a value accepted at the
// public boundary.
type inputKind uint8

const (
	inputInvalid inputKind = iota
	inputSize
	inputSequence
	inputHandle
)

// input is the resolved form of a value passed to New, Dump or DumpTo.
// The dynamic type is inspected exactly once here; downstream code
// switches on kind and never re-checks types.
type input struct {
	kind inputKind
	size int
	seq  any
	buf  *Buffer
}

func resolveInput(v any) input {
	switch t := v.(type) {
	case *Buffer:
		return input{kind: inputHandle, buf: t}
	case int:
		return input{kind: inputSize, size: t}
	case int32:
		return input{kind: inputSize, size: int(t)}
	case int64:
		return input{kind: inputSize, size: int(t)}
	case uint:
		if uint64(t) > math.MaxInt {
			return input{kind: inputInvalid}
		}
		return input{kind: inputSize, size: int(t)}
	case uint32:
		return input{kind: inputSize, size: int(t)}
	case uint64:
		if t > math.MaxInt {
			return input{kind: inputInvalid}
		}
		return input{kind: inputSize, size: int(t)}
	case []float32, []float64, []int, []int32, []int64:
		return input{kind: inputSequence, seq: t}
	default:
		return input{kind: inputInvalid}
	}
}
