package player

import (
	"math/rand/v2"

	"github.com/lox/battlebots/battleship"
)

// BetterRandomPlayer works through a shuffled list of every cell so it never
// repeats a shot until the board is exhausted, then falls back to RandomPlayer
// behaviour.
type BetterRandomPlayer struct {
	*RandomPlayer
	sequence []battleship.Coord
}

// NewBetterRandomPlayer creates a BetterRandomPlayer with a freshly shuffled
// shot sequence.
func NewBetterRandomPlayer(settings battleship.Settings, rng *rand.Rand) *BetterRandomPlayer {
	base := NewRandomPlayer(settings, rng)

	var sequence []battleship.Coord
	if settings.Size > 0 {
		sequence = make([]battleship.Coord, 0, settings.Size*settings.Size)
	}
	for x := 0; x < settings.Size; x++ {
		for y := 0; y < settings.Size; y++ {
			sequence = append(sequence, battleship.Coord{X: x, Y: y})
		}
	}
	rng.Shuffle(len(sequence), func(i, j int) {
		sequence[i], sequence[j] = sequence[j], sequence[i]
	})

	return &BetterRandomPlayer{RandomPlayer: base, sequence: sequence}
}

// DropBomb pops the next unshot cell.
func (p *BetterRandomPlayer) DropBomb() (int, int) {
	n := len(p.sequence)
	if n == 0 {
		return p.randomCell()
	}
	next := p.sequence[n-1]
	p.sequence = p.sequence[:n-1]
	return next.X, next.Y
}

// Remaining reports how many unshot cells are left in the sequence.
func (p *BetterRandomPlayer) Remaining() int {
	return len(p.sequence)
}
