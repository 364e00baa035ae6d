package annotate

import (
	"math"

	"github.com/ivlev/sentinel-islands/internal/magick"
)

// tickCount divides the calendar circle into one segment per month. Tick 0
// points straight up and progression runs clockwise, matching how the date
// marker sweeps through the year.
const tickCount = 12

// tickAngle returns the angle of month tick i, with tick 0 at -pi/2.
func tickAngle(i float64) float64 {
	return -math.Pi/2 + 2*math.Pi/tickCount*i
}

// onCircle returns the point at the given angle and radius from center.
func onCircle(center magick.Point, radius, theta float64) magick.Point {
	return magick.Point{
		X: math.Cos(theta)*radius + center.X,
		Y: math.Sin(theta)*radius + center.Y,
	}
}

// Calendar appends the calendar widget to cmd: the circle, twelve month
// ticks, and the four quarter labels. Only Jan/Apr/Jul/Oct are labeled, at
// hand-tuned offsets that are independent of the tick angles; the sparse
// labeling keeps the widget readable at small radii.
func Calendar(cmd *magick.Command, center magick.Point, radius float64) {
	cmd.SetStrokeWidth(3)
	cmd.SetFill("none")
	cmd.SetStroke("white")
	cmd.AddCircle(center, radius)

	outer := radius * 1.2
	for i := 0; i < tickCount; i++ {
		theta := tickAngle(float64(i))
		cmd.AddLine(onCircle(center, radius, theta), onCircle(center, outer, theta))
	}

	cmd.SetFontSize(int(radius / 6))
	cmd.AddText(magick.Point{X: center.X - radius/8, Y: center.Y - radius + radius/4.5}, "Jan")
	cmd.AddText(magick.Point{X: center.X - radius/8, Y: center.Y + radius - radius/27}, "Jul")
	cmd.AddText(magick.Point{X: center.X + radius - radius/3.2, Y: center.Y + radius/16}, "Apr")
	cmd.AddText(magick.Point{X: center.X - radius + radius/40, Y: center.Y + radius/13}, "Oct")
}
