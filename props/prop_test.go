package props_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dullaz/Raphtory/props"
)

func TestPropVariants(t *testing.T) {
	req := require.New(t)

	s := props.Str("alice")
	v, ok := s.AsStr()
	req.True(ok)
	req.Equal("alice", v)
	req.Equal(props.TypeStr, s.Typ())

	i := props.I64(-42)
	iv, ok := i.AsI64()
	req.True(ok)
	req.Equal(int64(-42), iv)

	u := props.U64(42)
	uv, ok := u.AsU64()
	req.True(ok)
	req.Equal(uint64(42), uv)

	f := props.F64(1.5)
	fv, ok := f.AsF64()
	req.True(ok)
	req.Equal(1.5, fv)

	b := props.Bool(true)
	bv, ok := b.AsBool()
	req.True(ok)
	req.True(bv)

	ts := props.Time(99)
	tv, ok := ts.AsTime()
	req.True(ok)
	req.Equal(int64(99), tv)

	// Wrong-variant access reports not-ok, never panics.
	_, ok = s.AsI64()
	req.False(ok)

	// Zero Prop is absent.
	var zero props.Prop
	req.False(zero.IsSet())
	req.Equal(props.TypeNone, zero.Typ())
}

func TestPropEqualAndCompare(t *testing.T) {
	req := require.New(t)

	req.True(props.I64(7).Equal(props.I64(7)))
	req.False(props.I64(7).Equal(props.I64(8)))
	// Different variants are unequal, not an error.
	req.False(props.I64(7).Equal(props.U64(7)))

	c, err := props.I64(3).Compare(props.I64(9))
	req.NoError(err)
	req.Equal(-1, c)

	c, err = props.Str("b").Compare(props.Str("a"))
	req.NoError(err)
	req.Equal(1, c)

	// Cross-variant comparison surfaces ErrTypeMismatch.
	_, err = props.I64(3).Compare(props.F64(3))
	req.ErrorIs(err, props.ErrTypeMismatch)

	// Lists and maps are unordered.
	_, err = props.List(props.I64(1)).Compare(props.List(props.I64(1)))
	req.ErrorIs(err, props.ErrTypeMismatch)

	req.True(props.List(props.I64(1), props.Str("x")).Equal(props.List(props.I64(1), props.Str("x"))))
	req.True(props.Map(map[string]props.Prop{"k": props.Bool(true)}).Equal(
		props.Map(map[string]props.Prop{"k": props.Bool(true)})))
}

func TestDictInterning(t *testing.T) {
	req := require.New(t)
	d := props.NewDict()

	a := d.Intern("weight")
	b := d.Intern("label")
	req.NotEqual(a, b)
	req.Equal(a, d.Intern("weight"))
	req.Equal(2, d.Len())
	req.Equal(2, d.Refs("weight"))
	req.Equal("weight", d.Name(a))

	_, ok := d.Lookup("missing")
	req.False(ok)
	req.Equal(0, d.Refs("missing"))
}
