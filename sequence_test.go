package numbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSequence(t *testing.T) {
	t.Run("Float32", func(t *testing.T) {
		src := []float32{1.5, 2.5, 3.5}
		buf, err := FromSequence(src)
		require.NoError(t, err)

		size, err := buf.Size()
		require.NoError(t, err)
		require.Equal(t, 3, size)

		for i, want := range src {
			v, err := buf.Get(i + 1)
			require.NoError(t, err)
			assert.Equal(t, want, v)
		}
	})

	t.Run("CopiesInput", func(t *testing.T) {
		src := []float32{1, 2, 3}
		buf, err := FromSequence(src)
		require.NoError(t, err)

		src[0] = 99
		v, err := buf.Get(1)
		require.NoError(t, err)
		assert.Equal(t, float32(1), v)
	})

	t.Run("Float64Narrowing", func(t *testing.T) {
		// 1.5 and 2.5 are exactly representable; 0.1 narrows to the
		// nearest single-precision value, which is float32(0.1).
		buf, err := FromSequence([]float64{1.5, 2.5, 0.1})
		require.NoError(t, err)

		v, err := buf.Get(1)
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), v)

		v, err = buf.Get(3)
		require.NoError(t, err)
		assert.Equal(t, float32(0.1), v)
	})

	t.Run("IntegerKinds", func(t *testing.T) {
		for name, seq := range map[string]any{
			"int":   []int{1, 2, 3},
			"int32": []int32{1, 2, 3},
			"int64": []int64{1, 2, 3},
		} {
			t.Run(name, func(t *testing.T) {
				buf, err := FromSequence(seq)
				require.NoError(t, err)

				v, err := buf.Get(2)
				require.NoError(t, err)
				assert.Equal(t, float32(2), v)
			})
		}
	})

	t.Run("Empty", func(t *testing.T) {
		buf, err := FromSequence([]float32{})
		require.NoError(t, err)

		size, err := buf.Size()
		require.NoError(t, err)
		assert.Equal(t, 0, size)
	})

	t.Run("Unrecognized", func(t *testing.T) {
		for _, seq := range []any{"hello", 3.14, []string{"a"}, map[int]float32{}, nil} {
			_, err := FromSequence(seq)

			var invalid *ErrInvalidArgument
			require.ErrorAs(t, err, &invalid, "input %T", seq)
		}
	})
}

func TestToScratch(t *testing.T) {
	t.Run("NeverAliases", func(t *testing.T) {
		src := []float32{1, 2, 3}
		scratch, n, err := toScratch(src)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		src[0] = 99
		assert.Equal(t, float32(1), scratch[0])
	})

	t.Run("ZeroLength", func(t *testing.T) {
		scratch, n, err := toScratch([]float64{})
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Nil(t, scratch)
	})
}
