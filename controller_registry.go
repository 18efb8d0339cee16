package parallax

// A panel as tracked by an active controller.
type RegisteredPanel struct {
	Index int
	Panel Panel

	// Pseudo dimensions. Zero means the live size is used.
	Width  float64
	Height float64
}

// Returns the size used for offset computations: the pseudo
// dimensions where set, the live measured size otherwise.
func (self *RegisteredPanel) Size() (width, height float64) {
	width, height = self.Width, self.Height
	if width == 0 || height == 0 {
		liveWidth, liveHeight := self.Panel.Size()
		if width == 0 {
			width = liveWidth
		}
		if height == 0 {
			height = liveHeight
		}
	}
	return width, height
}

func buildRegistry(stage Stage) []RegisteredPanel {
	panels := stage.Panels()
	registry := make([]RegisteredPanel, len(panels))
	for index, panel := range panels {
		registry[index] = RegisteredPanel{Index: index, Panel: panel}
	}
	return registry
}

// Options apply by position: opts[i] overrides registry entry i.
func applyPanelOptions(registry []RegisteredPanel, opts []PanelOption) {
	for i, opt := range opts {
		if i >= len(registry) {
			pkgLogger.Debug().
				Int("position", i).
				Int("panels", len(registry)).
				Msg("ignoring panel options out of range")
			continue
		}
		if opt.Index != i {
			pkgLogger.Debug().
				Int("position", i).
				Int("index", opt.Index).
				Msg("panel option index differs from its position")
		}
		if opt.Width != 0 {
			registry[i].Width = opt.Width
		}
		if opt.Height != 0 {
			registry[i].Height = opt.Height
		}
	}
}
