package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/lox/battlebots/battleship"
	"github.com/lox/battlebots/internal/player"
	"github.com/lox/battlebots/internal/probe"
)

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type PlaceCmd struct {
	Player string `short:"p" help:"Player strategy or configured player name"`
	JSON   bool   `help:"Emit JSON instead of tuples"`
}

func (c *PlaceCmd) Run(g *Globals, out io.Writer) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	inst, err := rt.spawn(c.Player)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	timed := battleship.NewTimed(inst.Player, rt.settings().MaxFnTime, quartz.NewReal(), inst.Logger)
	placements, err := timed.ShipLocations(ctx)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(placements)
	}
	for _, p := range placements {
		fmt.Fprintln(out, p)
	}
	return nil
}

type ShotsCmd struct {
	Player string `short:"p" help:"Player strategy or configured player name"`
	Count  int    `short:"n" default:"10" help:"Number of shots"`
}

func (c *ShotsCmd) Run(g *Globals, out io.Writer) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	inst, err := rt.spawn(c.Player)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	timed := battleship.NewTimed(inst.Player, rt.settings().MaxFnTime, quartz.NewReal(), inst.Logger)
	for i := 0; i < c.Count; i++ {
		x, y, err := timed.DropBomb(ctx)
		if err != nil {
			return fmt.Errorf("shot %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "%d %d\n", x, y)
	}
	inst.Logger.Debug("Shots emitted", "count", c.Count)
	return nil
}

type CheckCmd struct {
	Player    string `short:"p" help:"Player strategy or configured player name"`
	Count     int    `short:"n" default:"1000" help:"Shots per instance"`
	Instances int    `short:"i" default:"1" help:"Independent player instances to run concurrently"`
}

func (c *CheckCmd) Run(g *Globals, out io.Writer) error {
	rt, err := g.load()
	if err != nil {
		return err
	}
	strategy, seed := rt.selection(c.Player)

	ctx, cancel := signalContext()
	defer cancel()

	prober := probe.New(rt.settings(), quartz.NewReal(), rt.logger)
	report, err := prober.Run(ctx, probe.Options{
		Player:    strategy,
		Instances: c.Instances,
		Shots:     c.Count,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "player:        %s\n", report.Player)
	fmt.Fprintf(out, "board:         %dx%d\n", report.Settings.Size, report.Settings.Size)
	fmt.Fprintf(out, "instances:     %d\n", len(report.Instances))
	fmt.Fprintf(out, "shots:         %d\n", report.Shots)
	fmt.Fprintf(out, "out of bounds: %d\n", report.OutOfBounds)
	fmt.Fprintf(out, "repeats:       %d\n", report.Repeats)
	fmt.Fprintf(out, "timeouts:      %d\n", report.Timeouts)

	if !report.OK() {
		return fmt.Errorf("%s failed probe: %d shots off the board, %d timeouts",
			report.Player, report.OutOfBounds, report.Timeouts)
	}
	return nil
}

type PlayersCmd struct{}

func (c *PlayersCmd) Run(out io.Writer) error {
	fmt.Fprintln(out, "Available players:")
	for _, line := range player.Describe() {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}
