package player

import "github.com/lox/battlebots/battleship"

// MirrorPlayer uses StrategicPlayer's layout but fires back at whatever cell
// the opponent last targeted.
type MirrorPlayer struct {
	*StrategicPlayer
	last *battleship.Coord
}

// NewMirrorPlayer creates a MirrorPlayer that has not seen an enemy shot yet.
func NewMirrorPlayer(settings battleship.Settings) *MirrorPlayer {
	return &MirrorPlayer{StrategicPlayer: NewStrategicPlayer(settings)}
}

// DropBomb returns the opponent's last target, or (0, 0) before any.
func (p *MirrorPlayer) DropBomb() (int, int) {
	if p.last == nil {
		return 0, 0
	}
	return p.last.X, p.last.Y
}

// BombedFeedback remembers where the opponent fired.
func (p *MirrorPlayer) BombedFeedback(x, y int, result battleship.ShotResult) {
	p.last = &battleship.Coord{X: x, Y: y}
}
