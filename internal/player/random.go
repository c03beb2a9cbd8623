package player

import (
	"math/rand/v2"

	"github.com/lox/battlebots/battleship"
)

// RandomPlayer places every ship of the fleet at a random anchor and
// orientation and shoots uniformly at random.
type RandomPlayer struct {
	size  int
	ships []int
	rng   *rand.Rand
}

// NewRandomPlayer creates a RandomPlayer for the given game settings.
func NewRandomPlayer(settings battleship.Settings, rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{
		size:  settings.Size,
		ships: append([]int(nil), settings.Ships...),
		rng:   rng,
	}
}

func (p *RandomPlayer) randomCell() (int, int) {
	return p.rng.IntN(p.size), p.rng.IntN(p.size)
}

// ShipLocations places each configured ship at a random anchor and orientation.
func (p *RandomPlayer) ShipLocations() []battleship.Placement {
	placements := make([]battleship.Placement, 0, len(p.ships))
	for _, length := range p.ships {
		x, y := p.randomCell()
		placements = append(placements, battleship.Placement{
			Length:     length,
			Row:        x,
			Col:        y,
			Horizontal: p.rng.IntN(2) == 1,
		})
	}
	return placements
}

func (p *RandomPlayer) DropBomb() (int, int) {
	return p.randomCell()
}

// BombFeedback ignores the result.
func (p *RandomPlayer) BombFeedback(x, y int, result battleship.ShotResult) {}

// BombedFeedback ignores the result.
func (p *RandomPlayer) BombedFeedback(x, y int, result battleship.ShotResult) {}
