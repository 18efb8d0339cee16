package parallax

type fakePanel struct {
	width, height float64
	left, top     float64
	leftSets      int
	topSets       int
}

func (p *fakePanel) Size() (float64, float64) { return p.width, p.height }
func (p *fakePanel) Left() float64            { return p.left }
func (p *fakePanel) Top() float64             { return p.top }
func (p *fakePanel) SetLeft(v float64)        { p.left = v; p.leftSets++ }
func (p *fakePanel) SetTop(v float64)         { p.top = v; p.topSets++ }

type fakeStage struct {
	bounds   Rect
	panels   []*fakePanel
	handlers map[int]func(PointerEvent)
	nextID   int
	removed  int
}

func newFakeStage(bounds Rect, sizes ...[2]float64) *fakeStage {
	stage := &fakeStage{bounds: bounds, handlers: make(map[int]func(PointerEvent))}
	for _, size := range sizes {
		stage.panels = append(stage.panels, &fakePanel{width: size[0], height: size[1]})
	}
	return stage
}

func (s *fakeStage) Bounds() Rect { return s.bounds }

func (s *fakeStage) Panels() []Panel {
	panels := make([]Panel, len(s.panels))
	for i, p := range s.panels {
		panels[i] = p
	}
	return panels
}

func (s *fakeStage) OnPointerMove(handler func(PointerEvent)) Subscription {
	s.nextID++
	s.handlers[s.nextID] = handler
	return &fakeSubscription{stage: s, id: s.nextID}
}

func (s *fakeStage) move(x, y float64) {
	for _, handler := range s.handlers {
		handler(PointerEvent{PageX: x, PageY: y})
	}
}

type fakeSubscription struct {
	stage *fakeStage
	id    int
}

func (sub *fakeSubscription) Remove() {
	if _, found := sub.stage.handlers[sub.id]; found {
		delete(sub.stage.handlers, sub.id)
		sub.stage.removed++
	}
}
