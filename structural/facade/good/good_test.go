package good_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sghaida/patterns/internal/demotest"
	"github.com/sghaida/patterns/structural/facade/good"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	lines := demotest.Run(t, good.Run)
	require.Len(t, lines, 14)

	assert.Equal(t, "--- Initializing Home Theater System...", lines[0])
	assert.ElementsMatch(t, []string{
		"[BluRay] Booting...",
		"[Audio] Initializing...",
		"[Projector] Warming up...",
	}, lines[1:4])
	assert.Equal(t, []string{
		"[Projector] Input: HDMI ARC",
		"[Audio] Volume 35%",
		"--- Enjoy the movie!",
		"[BluRay] Playing 'Jurassic Park'",
		"[BluRay] Stopping movie",
		"--- Movie stopped.",
	}, lines[4:10])
	assert.ElementsMatch(t, []string{
		"[BluRay] Shutting down...",
		"[Audio] Powering off...",
		"[Projector] Cooling down ...",
	}, lines[10:13])
	assert.Equal(t, "--- Theater system OFF", lines[13])
}

// ---------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------

type mockPlayer struct{ mock.Mock }

func (m *mockPlayer) TurnOn(ctx context.Context) error  { return m.Called().Error(0) }
func (m *mockPlayer) Stop(ctx context.Context) error    { return m.Called().Error(0) }
func (m *mockPlayer) TurnOff(ctx context.Context) error { return m.Called().Error(0) }
func (m *mockPlayer) Play(ctx context.Context, movie string) error {
	return m.Called(movie).Error(0)
}

type mockAudio struct{ mock.Mock }

func (m *mockAudio) PowerOn(ctx context.Context) error  { return m.Called().Error(0) }
func (m *mockAudio) PowerOff(ctx context.Context) error { return m.Called().Error(0) }
func (m *mockAudio) SetVolume(ctx context.Context, level int) error {
	return m.Called(level).Error(0)
}

type mockProjector struct{ mock.Mock }

func (m *mockProjector) Activate(ctx context.Context) error   { return m.Called().Error(0) }
func (m *mockProjector) Deactivate(ctx context.Context) error { return m.Called().Error(0) }
func (m *mockProjector) SwitchInput(ctx context.Context, input string) error {
	return m.Called(input).Error(0)
}

// ---------------------------------------------------------------------
// Facade behaviour
// ---------------------------------------------------------------------

func TestInitialize_ConfiguresAfterPowerOn(t *testing.T) {
	t.Parallel()

	p, a, pr := &mockPlayer{}, &mockAudio{}, &mockProjector{}
	p.On("TurnOn").Return(nil)
	a.On("PowerOn").Return(nil)
	pr.On("Activate").Return(nil)
	pr.On("SwitchInput", good.DefaultInput).Return(nil)
	a.On("SetVolume", good.DefaultVolume).Return(nil)

	var buf bytes.Buffer
	require.NoError(t, good.NewHomeTheater(&buf, p, a, pr).Initialize(context.Background()))

	p.AssertExpectations(t)
	a.AssertExpectations(t)
	pr.AssertExpectations(t)
}

func TestInitialize_PowerOnFailureSkipsSetup(t *testing.T) {
	t.Parallel()

	boom := errors.New("lamp failure")
	p, a, pr := &mockPlayer{}, &mockAudio{}, &mockProjector{}
	p.On("TurnOn").Return(nil)
	a.On("PowerOn").Return(nil)
	pr.On("Activate").Return(boom)

	var buf bytes.Buffer
	err := good.NewHomeTheater(&buf, p, a, pr).Initialize(context.Background())

	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "facade: power on")
	pr.AssertNotCalled(t, "SwitchInput", mock.Anything)
	a.AssertNotCalled(t, "SetVolume", mock.Anything)
}

func TestClose_AttemptsEveryComponent(t *testing.T) {
	t.Parallel()

	boom := errors.New("stuck tray")
	p, a, pr := &mockPlayer{}, &mockAudio{}, &mockProjector{}
	p.On("TurnOff").Return(boom)
	a.On("PowerOff").Return(nil)
	pr.On("Deactivate").Return(nil)

	var buf bytes.Buffer
	err := good.NewHomeTheater(&buf, p, a, pr).Close(context.Background())

	require.ErrorIs(t, err, boom)
	assert.NotContains(t, buf.String(), "Theater system OFF")
	a.AssertExpectations(t)
	pr.AssertExpectations(t)
}

func TestPlayAndStop(t *testing.T) {
	t.Parallel()

	p := &mockPlayer{}
	p.On("Play", "Alien").Return(nil)
	p.On("Stop").Return(nil)

	var buf bytes.Buffer
	h := good.NewHomeTheater(&buf, p, &mockAudio{}, &mockProjector{})
	require.NoError(t, h.Play(context.Background(), "Alien"))
	require.NoError(t, h.Stop(context.Background()))

	assert.Equal(t, "--- Enjoy the movie!\n--- Movie stopped.\n", buf.String())
	p.AssertExpectations(t)
}
