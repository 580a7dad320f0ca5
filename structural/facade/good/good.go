// Package good hides the home theater behind one HomeTheater facade.
//
// The facade knows the start-up and shutdown sequences. Components that do
// not depend on each other are powered on and off concurrently.
package good

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sghaida/patterns/internal/demo"
	"golang.org/x/sync/errgroup"
)

type Player interface {
	TurnOn(ctx context.Context) error
	Play(ctx context.Context, movie string) error
	Stop(ctx context.Context) error
	TurnOff(ctx context.Context) error
}

type AudioSystem interface {
	PowerOn(ctx context.Context) error
	SetVolume(ctx context.Context, level int) error
	PowerOff(ctx context.Context) error
}

type Projector interface {
	Activate(ctx context.Context) error
	SwitchInput(ctx context.Context, input string) error
	Deactivate(ctx context.Context) error
}

// ---------------------------------------------------------------------
// Subsystems
// ---------------------------------------------------------------------

type BluRayPlayer struct{ Env demo.Env }

func (p BluRayPlayer) TurnOn(ctx context.Context) error {
	fmt.Fprintln(p.Env.Out, "[BluRay] Booting...")
	return p.Env.Sleep(ctx, 1200*time.Millisecond)
}

func (p BluRayPlayer) Play(ctx context.Context, movie string) error {
	fmt.Fprintf(p.Env.Out, "[BluRay] Playing '%s'\n", movie)
	return p.Env.Sleep(ctx, 300*time.Millisecond)
}

func (p BluRayPlayer) Stop(ctx context.Context) error {
	fmt.Fprintln(p.Env.Out, "[BluRay] Stopping movie")
	return p.Env.Sleep(ctx, 100*time.Millisecond)
}

func (p BluRayPlayer) TurnOff(ctx context.Context) error {
	fmt.Fprintln(p.Env.Out, "[BluRay] Shutting down...")
	return p.Env.Sleep(ctx, 800*time.Millisecond)
}

type SurroundSoundSystem struct{ Env demo.Env }

func (a SurroundSoundSystem) PowerOn(ctx context.Context) error {
	fmt.Fprintln(a.Env.Out, "[Audio] Initializing...")
	return a.Env.Sleep(ctx, 1500*time.Millisecond)
}

func (a SurroundSoundSystem) SetVolume(ctx context.Context, level int) error {
	fmt.Fprintf(a.Env.Out, "[Audio] Volume %d%%\n", level)
	return a.Env.Sleep(ctx, 100*time.Millisecond)
}

func (a SurroundSoundSystem) PowerOff(ctx context.Context) error {
	fmt.Fprintln(a.Env.Out, "[Audio] Powering off...")
	return a.Env.Sleep(ctx, 1500*time.Millisecond)
}

type LaserProjector struct{ Env demo.Env }

func (p LaserProjector) Activate(ctx context.Context) error {
	fmt.Fprintln(p.Env.Out, "[Projector] Warming up...")
	return p.Env.Sleep(ctx, 2000*time.Millisecond)
}

func (p LaserProjector) SwitchInput(ctx context.Context, input string) error {
	fmt.Fprintf(p.Env.Out, "[Projector] Input: %s\n", input)
	return p.Env.Sleep(ctx, 300*time.Millisecond)
}

func (p LaserProjector) Deactivate(ctx context.Context) error {
	fmt.Fprintln(p.Env.Out, "[Projector] Cooling down ...")
	return p.Env.Sleep(ctx, 2000*time.Millisecond)
}

// ---------------------------------------------------------------------
// Facade
// ---------------------------------------------------------------------

const (
	DefaultInput  = "HDMI ARC"
	DefaultVolume = 35
)

type HomeTheater struct {
	out       io.Writer
	player    Player
	audio     AudioSystem
	projector Projector
}

func NewHomeTheater(out io.Writer, player Player, audio AudioSystem, projector Projector) *HomeTheater {
	return &HomeTheater{out: out, player: player, audio: audio, projector: projector}
}

// Initialize powers every component on, then selects the input and volume.
func (h *HomeTheater) Initialize(ctx context.Context) error {
	fmt.Fprintln(h.out, "--- Initializing Home Theater System...")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return h.player.TurnOn(gctx) })
	g.Go(func() error { return h.audio.PowerOn(gctx) })
	g.Go(func() error { return h.projector.Activate(gctx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("facade: power on: %w", err)
	}

	if err := h.projector.SwitchInput(ctx, DefaultInput); err != nil {
		return fmt.Errorf("facade: switch input: %w", err)
	}
	if err := h.audio.SetVolume(ctx, DefaultVolume); err != nil {
		return fmt.Errorf("facade: set volume: %w", err)
	}
	return nil
}

func (h *HomeTheater) Play(ctx context.Context, movie string) error {
	fmt.Fprintln(h.out, "--- Enjoy the movie!")
	return h.player.Play(ctx, movie)
}

func (h *HomeTheater) Stop(ctx context.Context) error {
	if err := h.player.Stop(ctx); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "--- Movie stopped.")
	return nil
}

// Close powers every component off. All three are attempted even if one fails.
func (h *HomeTheater) Close(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return h.player.TurnOff(ctx) })
	g.Go(func() error { return h.audio.PowerOff(ctx) })
	g.Go(func() error { return h.projector.Deactivate(ctx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("facade: power off: %w", err)
	}

	fmt.Fprintln(h.out, "--- Theater system OFF")
	return nil
}

// Run watches a movie through the facade and always shuts the theater down.
func Run(ctx context.Context, env demo.Env) (err error) {
	theater := NewHomeTheater(env.Out,
		BluRayPlayer{Env: env}, SurroundSoundSystem{Env: env}, LaserProjector{Env: env})
	defer func() {
		if cerr := theater.Close(ctx); err == nil {
			err = cerr
		}
	}()

	if err := theater.Initialize(ctx); err != nil {
		return err
	}
	if err := theater.Play(ctx, "Jurassic Park"); err != nil {
		return err
	}
	if err := env.Sleep(ctx, time.Second); err != nil {
		return err
	}
	return theater.Stop(ctx)
}
