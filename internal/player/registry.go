// Package player contains the battleship strategies the host can run, keyed
// by name.
package player

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/lox/battlebots/battleship"
)

// ErrUnknownPlayer is returned for names that match no registered strategy.
var ErrUnknownPlayer = errors.New("unknown player")

// DefaultName is the strategy used when none is configured.
const DefaultName = "random-shot"

// Factory builds a player for one game.
type Factory func(settings battleship.Settings, rng *rand.Rand) battleship.Player

type entry struct {
	name        string
	aliases     []string
	description string
	factory     Factory
}

var registry = []entry{
	{
		name:        "random-shot",
		aliases:     []string{"rs"},
		description: "one fixed ship, uniformly random shots",
		factory: func(s battleship.Settings, rng *rand.Rand) battleship.Player {
			return NewRandomShotPlayer(s.Size, rng)
		},
	},
	{
		name:        "random",
		aliases:     []string{"rnd"},
		description: "random fleet placement, uniformly random shots",
		factory: func(s battleship.Settings, rng *rand.Rand) battleship.Player {
			return NewRandomPlayer(s, rng)
		},
	},
	{
		name:        "better-random",
		aliases:     []string{"better"},
		description: "random fleet placement, shuffled shots without repeats",
		factory: func(s battleship.Settings, rng *rand.Rand) battleship.Player {
			return NewBetterRandomPlayer(s, rng)
		},
	},
	{
		name:        "strategic",
		aliases:     []string{"strat"},
		description: "edge placement, strip sweep with hit follow-ups",
		factory: func(s battleship.Settings, _ *rand.Rand) battleship.Player {
			return NewStrategicPlayer(s)
		},
	},
	{
		name:        "mirror",
		description: "edge placement, fires back at the opponent's last shot",
		factory: func(s battleship.Settings, _ *rand.Rand) battleship.Player {
			return NewMirrorPlayer(s)
		},
	},
}

func lookup(name string) (entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	for _, e := range registry {
		if e.name == key {
			return e, nil
		}
		for _, alias := range e.aliases {
			if alias == key {
				return e, nil
			}
		}
	}
	return entry{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
}

// Resolve maps a name or alias to its canonical name. An empty name resolves
// to DefaultName.
func Resolve(name string) (string, error) {
	e, err := lookup(name)
	if err != nil {
		return "", err
	}
	return e.name, nil
}

// New constructs the named player.
func New(name string, settings battleship.Settings, rng *rand.Rand) (battleship.Player, error) {
	e, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return e.factory(settings, rng), nil
}

// Names returns the canonical strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Describe returns one human readable line per strategy, aliases included.
func Describe() []string {
	lines := make([]string, 0, len(registry))
	for _, e := range registry {
		line := e.name
		if len(e.aliases) > 0 {
			line += " (aliases: " + strings.Join(e.aliases, ", ") + ")"
		}
		lines = append(lines, line+" - "+e.description)
	}
	return lines
}
