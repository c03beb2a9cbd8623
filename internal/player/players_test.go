package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/internal/randutil"
)

func TestRandomPlayerPlacesWholeFleet(t *testing.T) {
	settings := battleship.DefaultSettings()
	p := NewRandomPlayer(settings, randutil.New(11))

	placements := p.ShipLocations()
	require.Len(t, placements, len(settings.Ships))
	for i, pl := range placements {
		assert.Equal(t, settings.Ships[i], pl.Length)
		assert.True(t, settings.InBounds(pl.Row, pl.Col), "anchor %v out of bounds", pl)
	}

	for i := 0; i < 500; i++ {
		x, y := p.DropBomb()
		require.True(t, settings.InBounds(x, y))
	}
}

func TestBetterRandomPlayerNoRepeats(t *testing.T) {
	settings := battleship.DefaultSettings()
	settings.Size = 5
	p := NewBetterRandomPlayer(settings, randutil.New(21))
	require.Equal(t, 25, p.Remaining())

	seen := make(map[battleship.Coord]bool)
	for i := 0; i < 25; i++ {
		x, y := p.DropBomb()
		c := battleship.Coord{X: x, Y: y}
		require.False(t, seen[c], "repeated shot %v", c)
		require.True(t, settings.InBounds(x, y))
		seen[c] = true
	}
	assert.Len(t, seen, 25)
	assert.Equal(t, 0, p.Remaining())

	// Exhausted: falls back to random cells, still on the board.
	x, y := p.DropBomb()
	assert.True(t, settings.InBounds(x, y))
}

func TestStrategicPlayerPlacement(t *testing.T) {
	settings := battleship.DefaultSettings()
	p := NewStrategicPlayer(settings)

	want := []battleship.Placement{
		{Length: 5, Row: 22, Col: 6, Horizontal: false},
		{Length: 4, Row: 18, Col: 7, Horizontal: false},
		{Length: 3, Row: 14, Col: 8, Horizontal: false},
		{Length: 3, Row: 10, Col: 8, Horizontal: false},
		{Length: 2, Row: 6, Col: 9, Horizontal: false},
	}
	assert.Equal(t, want, p.ShipLocations())
	// The configured fleet order is untouched.
	assert.Equal(t, []int{2, 3, 3, 4, 5}, settings.Ships)
}

func TestStrategicPlayerScanAndFollowUp(t *testing.T) {
	p := NewStrategicPlayer(battleship.DefaultSettings())

	var got []battleship.Coord
	for i := 0; i < 4; i++ {
		x, y := p.DropBomb()
		got = append(got, battleship.Coord{X: x, Y: y})
	}
	assert.Equal(t, []battleship.Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}}, got)

	p.BombFeedback(5, 5, battleship.Miss)
	assert.Equal(t, 0, p.Pending())

	p.BombFeedback(5, 5, battleship.Hit)
	require.Equal(t, 24, p.Pending())

	// A second hit while follow-ups are pending queues nothing new.
	p.BombFeedback(6, 6, battleship.Hit)
	assert.Equal(t, 24, p.Pending())

	// LIFO: the last queued offset (+2, +2) comes out first.
	x, y := p.DropBomb()
	assert.Equal(t, 7, x)
	assert.Equal(t, 7, y)

	for p.Pending() > 0 {
		x, y = p.DropBomb()
		assert.False(t, x == 5 && y == 5, "follow-ups must skip the hit cell")
	}

	// Sweep resumes where it stopped.
	x, y = p.DropBomb()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestMirrorPlayer(t *testing.T) {
	p := NewMirrorPlayer(battleship.DefaultSettings())

	x, y := p.DropBomb()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	p.BombedFeedback(4, 9, battleship.Hit)
	x, y = p.DropBomb()
	assert.Equal(t, 4, x)
	assert.Equal(t, 9, y)

	p.BombedFeedback(2, 3, battleship.Miss)
	x, y = p.DropBomb()
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)

	assert.Equal(t, NewStrategicPlayer(battleship.DefaultSettings()).ShipLocations(), p.ShipLocations())
}
