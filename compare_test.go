package strview_test

import (
	"testing"

	"github.com/dmitrymomot/strview"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	// Each pair is ordered less-before-greater; antisymmetry is
	// checked in both directions.
	ordered := []struct {
		name string
		less string
		more string
	}{
		{
			name: "first differing unit decides",
			less: "0000",
			more: "0123",
		},
		{
			name: "leading unit beats longer length",
			less: "0123",
			more: "123",
		},
		{
			name: "equal prefix shorter wins",
			less: "012",
			more: "0123",
		},
		{
			name: "empty sorts first",
			less: "",
			more: "0",
		},
	}

	for _, tt := range ordered {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := strview.OfString(tt.less)
			b := strview.OfString(tt.more)
			assert.Negative(t, a.Compare(b))
			assert.Positive(t, b.Compare(a))
		})
	}

	t.Run("self comparison is zero", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "0", "0123", "abcdef"} {
			v := strview.OfString(s)
			assert.Zero(t, v.Compare(v))
		}
	})

	t.Run("construction path does not affect ordering", func(t *testing.T) {
		t.Parallel()
		a := strview.Terminated([]byte("012\x00junk"))
		b := strview.Slice([]byte("0123456789"), 4)
		assert.Negative(t, a.Compare(b))
		assert.Positive(t, b.Compare(a))
	})

	t.Run("wide units compare by raw value", func(t *testing.T) {
		t.Parallel()
		a := strview.Of([]rune("zzz"))
		b := strview.Of([]rune("é"))
		// 'é' (U+00E9) is greater than any ASCII unit.
		assert.Negative(t, a.Compare(b))
		assert.Positive(t, b.Compare(a))
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("content and length only, never buffer identity", func(t *testing.T) {
		t.Parallel()
		a := strview.OfString("1234")
		b := strview.Of([]byte("1234"))
		c := strview.Slice([]byte("012345"), 6)

		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
		assert.False(t, a.Equal(c))
	})

	t.Run("equal across construction paths", func(t *testing.T) {
		t.Parallel()
		buf := []byte("12345")
		a := strview.OfString("234")
		b := strview.Slice(buf[1:], 3)
		assert.True(t, a.Equal(b))
	})

	t.Run("empty views are equal regardless of source", func(t *testing.T) {
		t.Parallel()
		buf := []byte("123456")
		a := strview.OfString("")
		b := strview.Slice(buf[6:], 0)
		assert.True(t, a.Equal(b))
	})

	t.Run("prefix of a view is not equal to it", func(t *testing.T) {
		t.Parallel()
		a := strview.OfString("1234")
		b := strview.Slice([]byte("1234"), 2)
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("reflexive symmetric transitive", func(t *testing.T) {
		t.Parallel()
		a := strview.OfString("abc")
		b := strview.Of([]byte("abc"))
		c := strview.Terminated([]byte("abc\x00xyz"))

		assert.True(t, a.Equal(a))
		assert.True(t, a.Equal(b) && b.Equal(a))
		assert.True(t, a.Equal(b) && b.Equal(c) && a.Equal(c))
	})

	t.Run("wide equality", func(t *testing.T) {
		t.Parallel()
		a := strview.Of([]rune("世界"))
		b := strview.Of([]rune("世界"))
		c := strview.Of([]rune("世"))
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
	})
}
