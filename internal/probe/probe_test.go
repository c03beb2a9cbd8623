package probe

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/internal/player"
)

func newTestProber(t *testing.T, settings battleship.Settings) *Prober {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return New(settings, quartz.NewMock(t), logger)
}

func TestRandomShotStaysOnBoard(t *testing.T) {
	settings := battleship.DefaultSettings()
	settings.Size = 10

	report, err := newTestProber(t, settings).Run(context.Background(), Options{
		Player:    "random-shot",
		Instances: 4,
		Shots:     1000,
		Seed:      99,
	})
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, "random-shot", report.Player)
	assert.Equal(t, 4000, report.Shots)
	assert.Equal(t, 0, report.OutOfBounds)
	assert.Equal(t, 0, report.Timeouts)
	// 1000 shots on 100 cells must repeat.
	assert.Greater(t, report.Repeats, 0)

	require.Len(t, report.Instances, 4)
	for _, inst := range report.Instances {
		assert.NotEmpty(t, inst.ID)
		assert.Equal(t, 1000, inst.Shots)
		assert.Equal(t, []battleship.Placement{{Length: 2, Row: 0, Col: 0, Horizontal: true}}, inst.Placements)
	}
}

func TestStrategicSweepLeavesBoard(t *testing.T) {
	report, err := newTestProber(t, battleship.DefaultSettings()).Run(context.Background(), Options{
		Player: "strategic",
		Shots:  40,
	})
	require.NoError(t, err)

	assert.False(t, report.OK())
	require.Len(t, report.Instances, 1)
	assert.Equal(t, []battleship.Coord{{12, 0}, {12, 1}, {12, 2}, {13, 0}}, report.Instances[0].OutOfBounds)
	assert.Equal(t, 4, report.OutOfBounds)
}

func TestMirrorRepeatsOrigin(t *testing.T) {
	report, err := newTestProber(t, battleship.DefaultSettings()).Run(context.Background(), Options{
		Player: "mirror",
		Shots:  5,
	})
	require.NoError(t, err)
	// Feedback echoes each shot back as the enemy's, so the mirror keeps
	// firing at (0, 0).
	assert.Equal(t, 4, report.Repeats)
	assert.True(t, report.OK())
}

func TestRunErrors(t *testing.T) {
	prober := newTestProber(t, battleship.DefaultSettings())

	_, err := prober.Run(context.Background(), Options{Player: "cheater", Shots: 1})
	assert.ErrorIs(t, err, player.ErrUnknownPlayer)

	_, err = prober.Run(context.Background(), Options{Shots: -1})
	assert.Error(t, err)
}

type stuckPlayer struct {
	started chan struct{}
	release chan struct{}
}

func (p *stuckPlayer) ShipLocations() []battleship.Placement {
	return []battleship.Placement{{Length: 2, Row: 0, Col: 0, Horizontal: true}}
}

func (p *stuckPlayer) DropBomb() (int, int) {
	p.started <- struct{}{}
	<-p.release
	return 0, 0
}

func (p *stuckPlayer) BombFeedback(x, y int, result battleship.ShotResult)   {}
func (p *stuckPlayer) BombedFeedback(x, y int, result battleship.ShotResult) {}

func TestTimeoutsAreCounted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings := battleship.DefaultSettings()
	settings.MaxFnTime = 50 * time.Millisecond

	mockClock := quartz.NewMock(t)
	logger := log.NewWithOptions(io.Discard, log.Options{})
	prober := New(settings, mockClock, logger)

	stuck := &stuckPlayer{started: make(chan struct{}, 1), release: make(chan struct{})}
	defer close(stuck.release)
	prober.spawn = func(name string, _ battleship.Settings, _ *rand.Rand, logger *log.Logger) (*player.Instance, error) {
		return &player.Instance{ID: "stuck", Name: name, Player: stuck, Logger: logger}, nil
	}

	type outcome struct {
		report *Report
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		report, err := prober.Run(ctx, Options{Player: "random-shot", Shots: 3})
		done <- outcome{report, err}
	}()

	<-stuck.started
	mockClock.Advance(50 * time.Millisecond).MustWait(ctx)

	res := <-done
	require.NoError(t, res.err)
	report := res.report

	// The first shot times out; the player is still stuck, so the other two
	// are rejected without reaching it.
	assert.Equal(t, 3, report.Timeouts)
	assert.Equal(t, 0, report.Shots)
	assert.Equal(t, 0, report.OutOfBounds)
	assert.False(t, report.OK())
	assert.Empty(t, stuck.started)
}

func TestReportOK(t *testing.T) {
	assert.True(t, (&Report{Shots: 10, Repeats: 3}).OK())
	assert.False(t, (&Report{OutOfBounds: 1}).OK())
	assert.False(t, (&Report{Timeouts: 1}).OK())
}
