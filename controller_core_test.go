package parallax

import (
	"bytes"
	"testing"
	"time"

	"github.com/edwinsyarief/parallax/easing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivateBuildsRegistryInOrder(t *testing.T) {
	stage := newFakeStage(Rect{Width: 100, Height: 100}, [2]float64{10, 10}, [2]float64{20, 20}, [2]float64{30, 30})
	ctrl, err := NewController(stage).Activate(Config{})
	require.NoError(t, err)
	require.NotNil(t, ctrl)
	assert.True(t, ctrl.IsActive())

	registry := ctrl.Registry()
	require.Len(t, registry, 3)
	for i, entry := range registry {
		assert.Equal(t, i, entry.Index)
		assert.Same(t, stage.panels[i], entry.Panel)
		assert.Zero(t, entry.Width)
		assert.Zero(t, entry.Height)
	}
	assert.Len(t, stage.handlers, 1)
}

func TestActivateTwiceIsNoop(t *testing.T) {
	stage := newFakeStage(Rect{Width: 100, Height: 100}, [2]float64{10, 10})
	ctrl := NewController(stage)
	_, err := ctrl.Activate(Config{})
	require.NoError(t, err)
	before := ctrl.Registry()

	stage.panels = append(stage.panels, &fakePanel{width: 5, height: 5})
	again, err := ctrl.Activate(Config{YMotion: true})
	assert.Nil(t, again)
	assert.ErrorIs(t, err, ErrAlreadyActive)
	assert.Equal(t, before, ctrl.Registry())
	assert.False(t, ctrl.Config().YMotion)
	assert.Len(t, stage.handlers, 1)
}

func TestActivateInvalidStageLogs(t *testing.T) {
	var buf bytes.Buffer
	prev := pkgLogger
	SetLogger(zerolog.New(&buf))
	defer SetLogger(prev)

	ctrl, err := NewController(nil).Activate(Config{})
	assert.Nil(t, ctrl)
	assert.ErrorIs(t, err, ErrInvalidStage)
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestAlreadyActiveIsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := pkgLogger
	SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	defer SetLogger(prev)

	ctrl := NewController(newFakeStage(Rect{Width: 10, Height: 10}))
	_, err := ctrl.Activate(Config{})
	require.NoError(t, err)
	_, err = ctrl.Activate(Config{})
	assert.ErrorIs(t, err, ErrAlreadyActive)
	_, err = ctrl.Deactivate()
	require.NoError(t, err)
	_, err = ctrl.Deactivate()
	assert.ErrorIs(t, err, ErrNotActive)
	assert.Empty(t, buf.String())
}

func TestDeactivateInactiveIsNoop(t *testing.T) {
	stage := newFakeStage(Rect{Width: 100, Height: 100}, [2]float64{10, 10})
	ctrl := NewController(stage)
	got, err := ctrl.Deactivate()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotActive)
	assert.Zero(t, stage.removed)
	assert.False(t, ctrl.IsActive())
}

func TestDeactivateRemovesListenerAndStopsPanels(t *testing.T) {
	stage := newFakeStage(Rect{Width: 200, Height: 100}, [2]float64{100, 100})
	ctrl, err := NewController(stage).Activate(Config{Speed: 100 * time.Millisecond})
	require.NoError(t, err)

	stage.move(200, 0)
	ctrl.Update(50 * time.Millisecond)
	require.InDelta(t, 50, stage.panels[0].left, 1e-9)

	got, err := ctrl.Deactivate()
	require.NoError(t, err)
	assert.Same(t, ctrl, got)
	assert.False(t, ctrl.IsActive())
	assert.Empty(t, stage.handlers)
	assert.Equal(t, 1, stage.removed)
	assert.Empty(t, ctrl.Registry())
	assert.False(t, ctrl.IsAnimating())

	ctrl.Update(time.Second)
	stage.move(0, 0)
	ctrl.HandlePointerMove(PointerEvent{})
	ctrl.Update(time.Second)
	assert.InDelta(t, 50, stage.panels[0].left, 1e-9)

	// can be activated again
	_, err = ctrl.Activate(Config{})
	require.NoError(t, err)
	assert.Len(t, stage.handlers, 1)
}

func TestPanelOptionsOverrideOnlyTargetIndex(t *testing.T) {
	stage := newFakeStage(Rect{Width: 100, Height: 100}, [2]float64{10, 10}, [2]float64{20, 20}, [2]float64{30, 30})
	ctrl, err := NewController(stage).Activate(Config{
		PanelOpts: []PanelOption{
			{Index: 0},
			{Index: 1, Width: 80},
			{Index: 2},
			{Index: 3, Width: 1, Height: 1},
		},
	})
	require.NoError(t, err)

	registry := ctrl.Registry()
	require.Len(t, registry, 3)
	assert.Equal(t, 80.0, registry[1].Width)
	assert.Zero(t, registry[1].Height)
	assert.Zero(t, registry[0].Width)
	assert.Zero(t, registry[2].Width)

	w, h := registry[1].Size()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 20.0, h)
	w, h = registry[2].Size()
	assert.Equal(t, 30.0, w)
	assert.Equal(t, 30.0, h)
}

func TestPanelOptionsApplyByPosition(t *testing.T) {
	stage := newFakeStage(Rect{Width: 100, Height: 100}, [2]float64{10, 10}, [2]float64{20, 20}, [2]float64{30, 30})
	ctrl, err := NewController(stage).Activate(Config{
		PanelOpts: []PanelOption{{Index: 2, Width: 77}},
	})
	require.NoError(t, err)

	registry := ctrl.Registry()
	require.Len(t, registry, 3)
	assert.Equal(t, 77.0, registry[0].Width)
	assert.Zero(t, registry[2].Width)
}

func TestPointerMoveHorizontalOnly(t *testing.T) {
	stage := newFakeStage(Rect{Width: 200, Height: 200}, [2]float64{50, 50})
	ctrl, err := NewController(stage).Activate(Config{Speed: 40 * time.Millisecond})
	require.NoError(t, err)

	stage.move(100, 180)
	for i := 0; i < 10; i++ {
		ctrl.Update(10 * time.Millisecond)
	}
	assert.Equal(t, 75.0, stage.panels[0].left)
	assert.Zero(t, stage.panels[0].topSets)
	assert.Zero(t, stage.panels[0].top)
}

func TestPointerMoveIsLinearOverSpeed(t *testing.T) {
	stage := newFakeStage(Rect{Width: 200, Height: 200}, [2]float64{0, 0})
	ctrl, err := NewController(stage).Activate(Config{Speed: 100 * time.Millisecond, YMotion: true})
	require.NoError(t, err)

	stage.move(200, 100)
	ctrl.Update(25 * time.Millisecond)
	assert.InDelta(t, 50, stage.panels[0].left, 1e-9)
	assert.InDelta(t, 25, stage.panels[0].top, 1e-9)
	assert.True(t, ctrl.IsAnimating())

	ctrl.Update(75 * time.Millisecond)
	assert.Equal(t, 200.0, stage.panels[0].left)
	assert.Equal(t, 100.0, stage.panels[0].top)
	assert.False(t, ctrl.IsAnimating())
}

func TestPointerMoveInterruptsPreviousTransition(t *testing.T) {
	stage := newFakeStage(Rect{Width: 200, Height: 200}, [2]float64{0, 0}, [2]float64{100, 0})
	ctrl, err := NewController(stage).Activate(Config{Speed: 100 * time.Millisecond, Easing: easing.Linear})
	require.NoError(t, err)

	stage.move(200, 0)
	ctrl.Update(50 * time.Millisecond)
	require.InDelta(t, 100, stage.panels[0].left, 1e-9)
	require.InDelta(t, 50, stage.panels[1].left, 1e-9)

	stage.move(0, 0)
	ctrl.Update(50 * time.Millisecond)
	assert.InDelta(t, 50, stage.panels[0].left, 1e-9)
	assert.InDelta(t, 25, stage.panels[1].left, 1e-9)
}

func TestZeroSizedStageStaysFinite(t *testing.T) {
	stage := newFakeStage(Rect{Width: 0, Height: 0}, [2]float64{50, 50})
	ctrl, err := NewController(stage).Activate(Config{YMotion: true})
	require.NoError(t, err)

	stage.move(10, 10)
	ctrl.Update(time.Second)
	assert.Equal(t, 0.0, stage.panels[0].left)
	assert.Equal(t, 0.0, stage.panels[0].top)
}

func TestEndToEndPseudoDimensions(t *testing.T) {
	stage := newFakeStage(Rect{X: 10, Y: 20, Width: 400, Height: 200}, [2]float64{50, 50}, [2]float64{300, 300})
	ctrl, err := NewController(stage).Activate(Config{
		Speed:     100 * time.Millisecond,
		YMotion:   true,
		PanelOpts: []PanelOption{{Index: 0, Width: 300, Height: 100}},
	})
	require.NoError(t, err)

	// exact center of the stage
	stage.move(210, 120)
	ctrl.Update(100 * time.Millisecond)

	// panel 0 uses its 300x100 pseudo size
	assert.Equal(t, 50.0, stage.panels[0].left)
	assert.Equal(t, 50.0, stage.panels[0].top)
	// panel 1 uses its live 300x300 size
	assert.Equal(t, 50.0, stage.panels[1].left)
	assert.Equal(t, -50.0, stage.panels[1].top)
}
