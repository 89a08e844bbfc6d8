package stealth

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// HumanClick moves the cursor to the element in several small steps before
// clicking, instead of teleporting straight onto it.
func HumanClick(page *rod.Page, el *rod.Element) error {
	shape, err := el.Shape()
	if err != nil || shape == nil || len(shape.Quads) == 0 {
		// Element has no box yet; plain click still fires the handlers
		return el.Click(proto.InputMouseButtonLeft, 1)
	}

	box := shape.Box()
	// Aim slightly off-center
	x := box.X + box.Width/2 + (rand.Float64()-0.5)*box.Width*0.3
	y := box.Y + box.Height/2 + (rand.Float64()-0.5)*box.Height*0.3

	steps := 8 + rand.Intn(8)
	if err := page.Mouse.MoveLinear(proto.Point{X: x, Y: y}, steps); err != nil {
		return err
	}
	time.Sleep(RandomMillis(60, 180))

	return el.Click(proto.InputMouseButtonLeft, 1)
}
