package main

import (
	"image/color"
	"path/filepath"
	"time"

	"github.com/edwinsyarief/parallax"
	"github.com/edwinsyarief/parallax/ebitenstage"
	"github.com/edwinsyarief/parallax/preset"
	"github.com/edwinsyarief/parallax/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// stage margin, so the panels visibly clip at the stage edges
const margin = 40

type game struct {
	width, height int
	stage         *ebitenstage.Stage
	ctrl          *parallax.Controller
	watcher       *preset.Watcher
	presetPath    string
	logger        zerolog.Logger
}

func newGame(width, height int, config parallax.Config, logger zerolog.Logger) (*game, error) {
	stageW, stageH := width-2*margin, height-2*margin
	stage := ebitenstage.New(margin, margin, float64(stageW), float64(stageH))
	for _, layer := range sceneLayers(stageW, stageH) {
		stage.AddPanel(layer)
	}

	ctrl, err := parallax.Attach(stage, config)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("panels", len(ctrl.Registry())).
		Dur("speed", config.Speed).
		Bool("y_motion", config.YMotion).
		Msg("stage ready")

	return &game{
		width:  width,
		height: height,
		stage:  stage,
		ctrl:   ctrl,
		logger: logger,
	}, nil
}

// back to front: sky, far hills, haze, near hills, foreground grass
func sceneLayers(stageW, stageH int) []*ebiten.Image {
	sky := ebiten.NewImage(stageW+80, stageH+60)
	sky.Fill(utils.RGB(122, 170, 214))

	// translucent, premultiplied
	haze := ebiten.NewImage(stageW+300, stageH+30)
	haze.Fill(utils.RGBA(40, 48, 56, 72))

	return []*ebiten.Image{
		sky,
		hillsImage(stageW+200, stageH+20, stageH/2, utils.RGB(96, 124, 150), 5),
		haze,
		hillsImage(stageW+400, stageH+40, stageH/3, utils.RGB(58, 104, 72), 3),
		hillsImage(stageW+700, stageH+80, stageH/6, utils.RGB(34, 70, 40), 9),
	}
}

var hillMask = []uint8{
	0, 0, 0, 1, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
}

// transparent image with count hills along its bottom edge
func hillsImage(width, height, hillHeight int, clr color.RGBA, count int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	hill := utils.MaskToImage(8, hillMask, clr)
	hillW := float64(width) / float64(count)
	var opts ebiten.DrawImageOptions
	for i := 0; i < count; i++ {
		opts.GeoM.Reset()
		opts.GeoM.Scale(hillW/8.0, float64(hillHeight)/4.0)
		opts.GeoM.Translate(float64(i)*hillW, float64(height-hillHeight))
		img.DrawImage(hill, &opts)
	}
	return img
}

func (g *game) watch(path string) error {
	watcher, err := preset.NewWatcher(filepath.Dir(path))
	if err != nil {
		return err
	}
	g.watcher = watcher
	g.presetPath, _ = filepath.Abs(path)
	return nil
}

func (g *game) Update() error {
	g.reloadPreset()
	g.stage.Update()
	parallax.UpdateAll(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) reloadPreset() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if abs, _ := filepath.Abs(name); abs != g.presetPath {
				continue
			}
			g.applyPreset()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn().Err(err).Msg("preset watcher")
		default:
			return
		}
	}
}

// re-activation rebuilds the registry with the new overrides
func (g *game) applyPreset() {
	config, err := preset.Load(g.presetPath)
	if err != nil {
		g.logger.Error().Err(err).Msg("preset reload failed")
		return
	}
	if err := parallax.Detach(g.stage); err != nil {
		g.logger.Warn().Err(err).Msg("detach")
	}
	ctrl, err := parallax.Attach(g.stage, config)
	if err != nil {
		g.logger.Error().Err(err).Msg("reattach")
		return
	}
	g.ctrl = ctrl
	g.logger.Info().Str("preset", g.presetPath).Msg("preset reloaded")
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(utils.RGB(18, 18, 24))
	g.stage.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *game) Close() {
	_ = parallax.Detach(g.stage)
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
