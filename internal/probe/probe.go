// Package probe exercises a player strategy the way a host would and checks
// that its answers stay on the board.
package probe

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/internal/player"
	"github.com/lox/battlebots/internal/randutil"
)

// Options selects what to probe.
type Options struct {
	Player    string
	Instances int
	Shots     int
	Seed      int64
}

// InstanceReport summarises one player instance.
type InstanceReport struct {
	ID          string
	Placements  []battleship.Placement
	Shots       int
	OutOfBounds []battleship.Coord
	Repeats     int
	Timeouts    int
}

// Report aggregates every instance of a probe run.
type Report struct {
	Player      string
	Settings    battleship.Settings
	Instances   []InstanceReport
	Shots       int
	OutOfBounds int
	Repeats     int
	Timeouts    int
}

// OK reports whether every shot was on the board and no call timed out.
func (r *Report) OK() bool {
	return r.OutOfBounds == 0 && r.Timeouts == 0
}

type spawnFunc func(name string, settings battleship.Settings, rng *rand.Rand, logger *log.Logger) (*player.Instance, error)

// Prober runs player instances against a settings profile.
type Prober struct {
	settings battleship.Settings
	clock    quartz.Clock
	logger   *log.Logger
	spawn    spawnFunc
}

func New(settings battleship.Settings, clock quartz.Clock, logger *log.Logger) *Prober {
	return &Prober{
		settings: settings,
		clock:    clock,
		logger:   logger.WithPrefix("probe"),
		spawn:    player.Spawn,
	}
}

// Run drives opts.Instances independent players concurrently. Each instance
// owns its random source; nothing is shared between goroutines.
func (p *Prober) Run(ctx context.Context, opts Options) (*Report, error) {
	name, err := player.Resolve(opts.Player)
	if err != nil {
		return nil, err
	}
	if opts.Instances < 1 {
		opts.Instances = 1
	}
	if opts.Shots < 0 {
		return nil, fmt.Errorf("shots must not be negative, got %d", opts.Shots)
	}

	p.logger.Info("Starting probe",
		"player", name,
		"instances", opts.Instances,
		"shots", opts.Shots,
		"size", p.settings.Size)

	results := make([]InstanceReport, opts.Instances)
	g, gctx := errgroup.WithContext(ctx)
	for i := range results {
		seed := randutil.Derive(opts.Seed, i)
		g.Go(func() error {
			inst, err := p.spawn(name, p.settings, randutil.New(seed), p.logger)
			if err != nil {
				return err
			}
			report, err := p.runInstance(gctx, inst, opts.Shots)
			if err != nil {
				return fmt.Errorf("instance %s: %w", inst.ID, err)
			}
			results[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Player: name, Settings: p.settings, Instances: results}
	for _, r := range results {
		report.Shots += r.Shots
		report.OutOfBounds += len(r.OutOfBounds)
		report.Repeats += r.Repeats
		report.Timeouts += r.Timeouts
	}

	p.logger.Info("Probe complete",
		"player", name,
		"shots", report.Shots,
		"outOfBounds", report.OutOfBounds,
		"repeats", report.Repeats,
		"timeouts", report.Timeouts)

	return report, nil
}

func (p *Prober) runInstance(ctx context.Context, inst *player.Instance, shots int) (InstanceReport, error) {
	report := InstanceReport{ID: inst.ID}
	timed := battleship.NewTimed(inst.Player, p.settings.MaxFnTime, p.clock, inst.Logger)

	// A timeout is the player's problem and gets counted; anything else aborts.
	// After one timeout Timed rejects calls until the stuck one returns, so
	// the remaining calls count as timeouts too.
	tolerate := func(err error) error {
		if errors.Is(err, battleship.ErrTimeout) {
			report.Timeouts++
			return nil
		}
		return err
	}

	placements, err := timed.ShipLocations(ctx)
	if err := tolerate(err); err != nil {
		return report, err
	}
	report.Placements = placements

	seen := make(map[battleship.Coord]bool)
	for i := 0; i < shots; i++ {
		x, y, err := timed.DropBomb(ctx)
		if err != nil {
			if err := tolerate(err); err != nil {
				return report, err
			}
			continue
		}
		report.Shots++

		c := battleship.Coord{X: x, Y: y}
		result := battleship.Miss
		switch {
		case !p.settings.InBounds(x, y):
			report.OutOfBounds = append(report.OutOfBounds, c)
			inst.Logger.Warn("Shot off the board", "x", x, "y", y)
			result = battleship.Invalid
		case seen[c]:
			report.Repeats++
			result = battleship.PreviousMiss
		}
		seen[c] = true

		if err := tolerate(timed.BombFeedback(ctx, x, y, result)); err != nil {
			return report, err
		}
		if err := tolerate(timed.BombedFeedback(ctx, x, y, battleship.Miss)); err != nil {
			return report, err
		}
	}

	return report, nil
}
