// Package bad makes the client drive every home theater component itself.
//
// The client has to know the start-up order and forgets half of the
// shutdown: audio and projector stay on after the movie.
package bad

import (
	"context"
	"fmt"
	"time"

	"github.com/sghaida/patterns/internal/demo"
)

type BluRayPlayer struct{ env demo.Env }

func (p BluRayPlayer) TurnOn(ctx context.Context) error {
	fmt.Fprintln(p.env.Out, "[BluRay] Booting...")
	return p.env.Sleep(ctx, 1200*time.Millisecond)
}

func (p BluRayPlayer) Play(ctx context.Context, movie string) error {
	fmt.Fprintf(p.env.Out, "[BluRay] Playing '%s'\n", movie)
	return p.env.Sleep(ctx, 300*time.Millisecond)
}

func (p BluRayPlayer) TurnOff(ctx context.Context) error {
	fmt.Fprintln(p.env.Out, "[BluRay] Shutting down...")
	return p.env.Sleep(ctx, 800*time.Millisecond)
}

type SurroundSoundSystem struct{ env demo.Env }

func (a SurroundSoundSystem) PowerOn(ctx context.Context) error {
	fmt.Fprintln(a.env.Out, "[Audio] Initializing...")
	return a.env.Sleep(ctx, 1500*time.Millisecond)
}

func (a SurroundSoundSystem) SetVolume(ctx context.Context, level int) error {
	fmt.Fprintf(a.env.Out, "[Audio] Volume %d%%\n", level)
	return a.env.Sleep(ctx, 100*time.Millisecond)
}

type LaserProjector struct{ env demo.Env }

func (p LaserProjector) Activate(ctx context.Context) error {
	fmt.Fprintln(p.env.Out, "[Projector] Warming up...")
	return p.env.Sleep(ctx, 2000*time.Millisecond)
}

func (p LaserProjector) SwitchInput(ctx context.Context, input string) error {
	fmt.Fprintf(p.env.Out, "[Projector] Input: %s\n", input)
	return p.env.Sleep(ctx, 300*time.Millisecond)
}

// Run powers everything on one by one, plays a movie and only turns the player off.
func Run(ctx context.Context, env demo.Env) error {
	player := BluRayPlayer{env: env}
	audio := SurroundSoundSystem{env: env}
	projector := LaserProjector{env: env}

	steps := []func(context.Context) error{
		player.TurnOn,
		audio.PowerOn,
		projector.Activate,
		func(ctx context.Context) error { return projector.SwitchInput(ctx, "HDMI") },
		func(ctx context.Context) error { return audio.SetVolume(ctx, 35) },
		func(ctx context.Context) error { return player.Play(ctx, "Jurassic Park") },
		func(ctx context.Context) error { return env.Sleep(ctx, 2*time.Second) },
		player.TurnOff,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
