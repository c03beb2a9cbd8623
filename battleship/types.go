package battleship

import (
	"fmt"
	"strings"
	"time"
)

// Player is implemented by every strategy the host can drive.
type Player interface {
	// ShipLocations returns where the player wants its fleet placed.
	ShipLocations() []Placement

	// DropBomb picks the next coordinate to shoot at on the opponent's board.
	DropBomb() (x, y int)

	// BombFeedback reports the result of a bomb this player dropped.
	BombFeedback(x, y int, result ShotResult)

	// BombedFeedback reports the result of a bomb dropped on this player's board.
	BombedFeedback(x, y int, result ShotResult)
}

// Coord is a single board cell.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement describes one ship: its length, anchor and orientation. Row is
// the host's x coordinate and Col its y.
type Placement struct {
	Length     int  `json:"length"`
	Row        int  `json:"row"`
	Col        int  `json:"col"`
	Horizontal bool `json:"horizontal"`
}

// Cells returns the coordinates a placement would occupy. Bounds and overlaps
// are not checked.
func (p Placement) Cells() []Coord {
	if p.Length <= 0 {
		return nil
	}
	cells := make([]Coord, p.Length)
	for i := range cells {
		if p.Horizontal {
			cells[i] = Coord{X: p.Row + i, Y: p.Col}
		} else {
			cells[i] = Coord{X: p.Row, Y: p.Col + i}
		}
	}
	return cells
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d, %d, %d, %t)", p.Length, p.Row, p.Col, p.Horizontal)
}

// ShotResult is the outcome of a bomb as reported by the host.
type ShotResult int

const (
	Miss ShotResult = iota
	PreviousMiss
	Hit
	PreviousHit
	Invalid
)

var shotResultNames = [...]string{
	Miss:         "miss",
	PreviousMiss: "previous_miss",
	Hit:          "hit",
	PreviousHit:  "previous_hit",
	Invalid:      "invalid",
}

// String returns the host's wire name for the result.
func (r ShotResult) String() string {
	if r < 0 || int(r) >= len(shotResultNames) {
		return "unknown"
	}
	return shotResultNames[r]
}

// ParseShotResult converts a wire name (case-insensitive) into a ShotResult.
func ParseShotResult(s string) (ShotResult, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range shotResultNames {
		if n == name {
			return ShotResult(i), nil
		}
	}
	return Invalid, fmt.Errorf("unknown shot result %q", s)
}

// Settings are the game parameters a host hands to each player it constructs.
type Settings struct {
	Size          int
	MaxTurns      int
	MaxFnTime     time.Duration
	FeedbackDelay int
	Ships         []int
}

// DefaultSettings matches the host's stock 12x12 game.
func DefaultSettings() Settings {
	return Settings{
		Size:          12,
		MaxTurns:      144,
		MaxFnTime:     0,
		FeedbackDelay: 0,
		Ships:         []int{2, 3, 3, 4, 5},
	}
}

// InBounds reports whether (x, y) lies on a board of the configured size.
func (s Settings) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Size && y < s.Size
}
