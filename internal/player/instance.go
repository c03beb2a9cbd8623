package player

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	uuid "github.com/satori/go.uuid"

	"github.com/lox/battlebots/battleship"
)

// Instance is a constructed player tagged with a unique id so its calls can
// be correlated in logs.
type Instance struct {
	ID     string
	Name   string
	Player battleship.Player
	Logger *log.Logger
}

// Spawn resolves name, constructs the player and derives a logger carrying
// the instance id.
func Spawn(name string, settings battleship.Settings, rng *rand.Rand, logger *log.Logger) (*Instance, error) {
	canonical, err := Resolve(name)
	if err != nil {
		return nil, err
	}
	p, err := New(canonical, settings, rng)
	if err != nil {
		return nil, err
	}

	id := uuid.NewV4().String()
	instLogger := logger.WithPrefix(canonical).With("instance", id)
	instLogger.Debug("Player created", "size", settings.Size, "ships", settings.Ships)

	return &Instance{
		ID:     id,
		Name:   canonical,
		Player: p,
		Logger: instLogger,
	}, nil
}
