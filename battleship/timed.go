package battleship

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ErrTimeout is returned when a player call outlives its deadline.
var ErrTimeout = errors.New("player call timed out")

// Timed guards every call into a Player with a deadline and turns player
// panics into errors. A call that times out is abandoned, not interrupted: it
// keeps running in its own goroutine and its result is discarded. Until it
// returns, every further call fails fast with ErrTimeout, so the player never
// sees two calls at once.
type Timed struct {
	player  Player
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger
	busy    chan struct{}
}

// NewTimed wraps player. A zero timeout disables the deadline but keeps panic
// recovery and context cancellation.
func NewTimed(player Player, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Timed {
	return &Timed{
		player:  player,
		timeout: timeout,
		clock:   clock,
		logger:  logger.WithPrefix("timed"),
		busy:    make(chan struct{}, 1),
	}
}

// Player returns the wrapped player.
func (t *Timed) Player() Player {
	return t.player
}

func (t *Timed) ShipLocations(ctx context.Context) ([]Placement, error) {
	var placements []Placement
	err := t.call(ctx, "ship_locations", func() {
		placements = t.player.ShipLocations()
	})
	if err != nil {
		return nil, err
	}
	return placements, nil
}

func (t *Timed) DropBomb(ctx context.Context) (int, int, error) {
	var x, y int
	err := t.call(ctx, "drop_bomb", func() {
		x, y = t.player.DropBomb()
	})
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (t *Timed) BombFeedback(ctx context.Context, x, y int, result ShotResult) error {
	return t.call(ctx, "bomb_feedback", func() {
		t.player.BombFeedback(x, y, result)
	})
}

func (t *Timed) BombedFeedback(ctx context.Context, x, y int, result ShotResult) error {
	return t.call(ctx, "bombed_feedback", func() {
		t.player.BombedFeedback(x, y, result)
	})
}

func (t *Timed) call(ctx context.Context, method string, fn func()) error {
	// The slot is released by the worker goroutine, not by us, so an abandoned
	// call keeps the player locked until it actually finishes.
	select {
	case t.busy <- struct{}{}:
	default:
		return fmt.Errorf("%s: previous call still running: %w", method, ErrTimeout)
	}

	// Arm the deadline before the player starts so a mock clock can be
	// advanced as soon as the call is observed running.
	expired := make(chan struct{})
	if t.timeout > 0 {
		timer := t.clock.AfterFunc(t.timeout, func() {
			close(expired)
		})
		defer timer.Stop()
	}

	done := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panicked: %v", method, r)
			}
			<-t.busy
			done <- err
		}()
		fn()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.logger.Warn("Player call failed", "method", method, "error", err)
		}
		return err
	case <-expired:
		t.logger.Warn("Player call timed out", "method", method, "timeout", t.timeout)
		return fmt.Errorf("%s: %w", method, ErrTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
