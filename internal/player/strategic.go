package player

import (
	"slices"

	"github.com/lox/battlebots/battleship"
)

// StrategicPlayer lines its fleet up vertically from the right edge, sweeps a
// three-column strip, and after a hit saturates the surrounding 5x5 block.
type StrategicPlayer struct {
	size     int
	ships    []int
	scanning int
	forced   []battleship.Coord
}

// NewStrategicPlayer creates a StrategicPlayer with an empty follow-up queue.
func NewStrategicPlayer(settings battleship.Settings) *StrategicPlayer {
	return &StrategicPlayer{
		size:  settings.Size,
		ships: append([]int(nil), settings.Ships...),
	}
}

// ShipLocations places ships largest first. The column spacing doubles the
// stride, so on small boards some ships land out of bounds and the host drops
// them.
func (p *StrategicPlayer) ShipLocations() []battleship.Placement {
	ships := slices.Clone(p.ships)
	slices.SortFunc(ships, func(a, b int) int { return b - a })

	placements := make([]battleship.Placement, 0, len(ships))
	for i, length := range ships {
		column := p.size - 1 - 2*i
		placements = append(placements, battleship.Placement{
			Length:     length,
			Row:        column * 2,
			Col:        p.size - 1 - length,
			Horizontal: false,
		})
	}
	return placements
}

// DropBomb drains queued follow-up shots (most recent first) before resuming
// the sweep.
func (p *StrategicPlayer) DropBomb() (int, int) {
	if n := len(p.forced); n > 0 {
		next := p.forced[n-1]
		p.forced = p.forced[:n-1]
		return next.X, next.Y
	}
	x, y := p.scanning/3, p.scanning%3
	p.scanning++
	return x, y
}

// BombFeedback queues the neighbourhood of a fresh hit, unless follow-ups are
// already pending.
func (p *StrategicPlayer) BombFeedback(x, y int, result battleship.ShotResult) {
	if result != battleship.Hit || len(p.forced) > 0 {
		return
	}
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p.forced = append(p.forced, battleship.Coord{X: x + dx, Y: y + dy})
		}
	}
}

// BombedFeedback ignores the result.
func (p *StrategicPlayer) BombedFeedback(x, y int, result battleship.ShotResult) {}

// Pending reports how many follow-up shots are queued.
func (p *StrategicPlayer) Pending() int {
	return len(p.forced)
}
