package player

import (
	"math/rand/v2"

	"github.com/lox/battlebots/battleship"
)

// RandomShotPlayer parks a single two-cell ship in the corner and fires at
// uniformly random cells. It keeps no memory of earlier shots, so repeats are
// possible.
type RandomShotPlayer struct {
	size int
	rng  *rand.Rand
}

// NewRandomShotPlayer creates a player for a size x size board. The size is
// not validated: DropBomb panics through rng.IntN when size < 1.
func NewRandomShotPlayer(size int, rng *rand.Rand) *RandomShotPlayer {
	return &RandomShotPlayer{size: size, rng: rng}
}

// ShipLocations always returns the same placement.
func (p *RandomShotPlayer) ShipLocations() []battleship.Placement {
	return []battleship.Placement{
		{Length: 2, Row: 0, Col: 0, Horizontal: true},
	}
}

// DropBomb returns x and y drawn independently from [0, size-1].
func (p *RandomShotPlayer) DropBomb() (int, int) {
	return p.rng.IntN(p.size), p.rng.IntN(p.size)
}

// BombFeedback discards the result of this player's shot.
func (p *RandomShotPlayer) BombFeedback(x, y int, result battleship.ShotResult) {}

// BombedFeedback discards the result of the opponent's shot.
func (p *RandomShotPlayer) BombedFeedback(x, y int, result battleship.ShotResult) {}
