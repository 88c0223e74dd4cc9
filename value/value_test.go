package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredValueAndRef(t *testing.T) {
	r := NewRequired[int32](42)
	require.Equal(t, int32(42), r.Value())

	*r.Ref() = 7
	require.Equal(t, int32(7), r.Value())
}

func TestRequiredInRange(t *testing.T) {
	lim := Limits[int32]{Min: -10, Max: 10}

	require.True(t, NewRequired[int32](0).InRange(lim))
	require.True(t, NewRequired[int32](-10).InRange(lim))
	require.True(t, NewRequired[int32](10).InRange(lim))
	require.False(t, NewRequired[int32](11).InRange(lim))
	require.False(t, NewRequired[int32](-11).InRange(lim))
}

func TestRequiredOrdering(t *testing.T) {
	a := NewRequired[uint16](1)
	b := NewRequired[uint16](2)

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Equal(NewRequired[uint16](1)))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestOptionalPresence(t *testing.T) {
	const null = math.MaxUint8

	for v := range uint8(null) {
		o := NewOptional(v, uint8(null))
		require.True(t, o.HasValue(), "value %d should be present", v)
	}

	n := NullOptional[uint8](null)
	require.False(t, n.HasValue())

	got, ok := n.Get()
	require.False(t, ok)
	require.Equal(t, uint8(null), got)
	require.Equal(t, uint8(9), n.ValueOr(9))
}

func TestOptionalNullOrdersFirst(t *testing.T) {
	null := NullOptional[int64](math.MinInt64)
	present := NewOptional[int64](math.MinInt64+1, math.MinInt64)

	require.True(t, null.Less(present))
	require.False(t, present.Less(null))
	require.False(t, null.Less(null))
	require.Equal(t, -1, null.Compare(present))
	require.Equal(t, 0, null.Compare(NullOptional[int64](math.MinInt64)))
}

func TestOptionalEquality(t *testing.T) {
	const null = float64(0)

	require.True(t, NullOptional(null).Equal(NullOptional(null)))
	require.True(t, NewOptional(1.5, null).Equal(NewOptional(1.5, null)))
	require.False(t, NewOptional(1.5, null).Equal(NullOptional(null)))
	require.False(t, NewOptional(1.5, null).Equal(NewOptional(2.5, null)))
}

func TestBitset(t *testing.T) {
	b := NewBitset[uint16](0)
	require.False(t, b.Test(3))

	b = b.Set(3, true).Set(0, true)
	require.True(t, b.Test(3))
	require.True(t, b.Test(0))
	require.Equal(t, uint16(0b1001), b.Bits())

	b = b.Set(3, false)
	require.False(t, b.Test(3))
	require.True(t, b.Equal(NewBitset[uint16](1)))
}

func TestEnumName(t *testing.T) {
	names := map[uint8]string{1: "Buy", 2: "Sell"}

	name, ok := EnumName(uint8(1), names)
	require.True(t, ok)
	require.Equal(t, "Buy", name)

	_, ok = EnumName(uint8(9), names)
	require.False(t, ok)
}

func TestVisitChoices(t *testing.T) {
	choices := []Choice{{Name: "day", Index: 0}, {Name: "ioc", Index: 1}, {Name: "fok", Index: 2}}
	b := NewBitset[uint8](0b101)

	var names []string
	var states []bool
	VisitChoices(b, choices, func(name string, set bool) {
		names = append(names, name)
		states = append(states, set)
	})

	require.Equal(t, []string{"day", "ioc", "fok"}, names)
	require.Equal(t, []bool{true, false, true}, states)
}
