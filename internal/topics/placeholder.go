package topics

import (
	"github.com/san-kum/fieldlab/internal/params"
	"github.com/san-kum/fieldlab/internal/scene"
)

func drawPlaceholder(f Frame, _ params.Set) []scene.Command {
	cx, cy := f.center()
	return scene.NewBuilder().
		Clear(ColorBackground).
		Text(scene.Pt(cx, cy), "Physics Simulation", 24, scene.AlignCenter, ColorText).
		Text(scene.Pt(cx, cy+40), "Interactive visualization coming soon!", 16, scene.AlignCenter, ColorText).
		Commands()
}
