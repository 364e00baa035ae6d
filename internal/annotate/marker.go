package annotate

import (
	"fmt"
	"time"

	"github.com/ivlev/sentinel-islands/internal/magick"
)

// markerAngle returns the angle of the date tick: the month selects the
// calendar segment and the day's progress through that month (leap years
// included for February) sweeps across it.
func markerAngle(date time.Time) float64 {
	monthFraction := float64(date.Day()) / float64(daysInMonth(date.Year(), date.Month()))
	return tickAngle(float64(date.Month()-1) + monthFraction)
}

// daysInMonth returns the number of days in the given month. Day 0 of the
// following month normalizes to that month's last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Marker appends the acquisition-date annotation to cmd: a red radial tick
// at the date's angle and the year centered in the calendar circle. The
// tick spans a slightly larger band than the month ticks so it stands out.
func Marker(cmd *magick.Command, center magick.Point, radius float64, date time.Time) {
	theta := markerAngle(date)
	inner := radius + 5
	outer := radius * 1.2 * 1.11

	cmd.SetStrokeWidth(5)
	cmd.SetStroke("red")
	cmd.AddLine(onCircle(center, inner, theta), onCircle(center, outer, theta))

	cmd.SetFontSize(int(radius / 2))
	cmd.SetFill("white")
	cmd.SetStroke("none")
	cmd.AddText(magick.Point{X: center.X - radius/2, Y: center.Y + radius/5.3}, fmt.Sprintf("%d", date.Year()))
}
