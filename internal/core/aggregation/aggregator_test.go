package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter_RankedBreaksTiesByFirstEncounter(t *testing.T) {
	c := NewCounter()
	c.Add("Drama", "")
	c.Add("Action", "")
	c.Add("Comedy", "")
	c.Add("Action", "")
	c.Add("Comedy", "")

	ranked := c.Ranked(0)
	require.Equal(t, []RankedEntry{
		{Name: "Action", Count: 2},
		{Name: "Comedy", Count: 2},
		{Name: "Drama", Count: 1},
	}, ranked)
}

func TestCounter_KeepsFirstImage(t *testing.T) {
	c := NewCounter()
	c.Add("Christopher Nolan", "/first.jpg")
	c.Add("Christopher Nolan", "/second.jpg")
	c.Add("Christopher Nolan", "")

	ranked := c.Ranked(10)
	require.Len(t, ranked, 1)
	require.Equal(t, "/first.jpg", ranked[0].Image)
	require.Equal(t, 3, ranked[0].Count)
}

func TestCounter_LimitAndTotals(t *testing.T) {
	c := NewCounter()
	for i, name := range []string{"a", "b", "c", "d"} {
		c.AddN(name, "", i+1)
	}
	c.Add("", "")

	require.Equal(t, 4, c.Len())
	require.Equal(t, 10, c.Total())
	require.Equal(t, 3, c.Get("c"))
	require.Equal(t, 0, c.Get("missing"))

	top := c.Ranked(2)
	require.Len(t, top, 2)
	require.Equal(t, "d", top[0].Name)
	require.Equal(t, "c", top[1].Name)
}

func TestCounter_RankedDoesNotMutate(t *testing.T) {
	c := NewCounter()
	c.Add("x", "")
	c.Add("y", "")
	c.Add("y", "")

	_ = c.Ranked(1)
	c.Add("x", "")
	c.Add("x", "")

	require.Equal(t, "x", c.Ranked(1)[0].Name)
}

func TestCounter_Empty(t *testing.T) {
	c := NewCounter()
	require.Empty(t, c.Ranked(10))
	require.Equal(t, 0, c.Total())
}
