// Package parallax attaches mouse-driven parallax motion to a stage:
// whenever the pointer moves over the stage, each of its panels is
// animated towards an offset proportional to the pointer position and
// to how much the panel is bigger or smaller than the stage.
//
// The stage and its panels are described by the [Stage] and [Panel]
// interfaces. The ebitenstage subpackage provides an Ebitengine
// implementation, but anything able to enumerate its children, report
// its bounds and deliver pointer moves will do.
//
// Basic usage with a single stage:
//
//	ctrl, err := parallax.NewController(stage).Activate(parallax.Config{
//	    YMotion: true,
//	})
//	...
//	// on every game update
//	stage.Update()
//	ctrl.Update(time.Second / time.Duration(ebiten.TPS()))
//
// Multiple stages can also be tracked through the package level
// [Attach](), [Detach]() and [UpdateAll]() functions.
package parallax
