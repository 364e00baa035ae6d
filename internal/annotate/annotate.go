// Package annotate computes the calendar-widget geometry and assembles the
// per-frame ImageMagick commands from it. All layout math is pure; the only
// output is draw operations appended to a magick.Command.
package annotate

import (
	"time"

	"github.com/ivlev/sentinel-islands/internal/island"
	"github.com/ivlev/sentinel-islands/internal/magick"
)

// Placement returns the calendar center and radius for a crop region. The
// radius is a tenth of the shorter crop edge and the center sits in the
// bottom-right corner, inset by 1.5 radii on both axes. Islands whose crop
// is occupied bottom-right are configured to flip to the bottom-left
// corner instead.
func Placement(isl island.Island) (magick.Point, float64) {
	crop := isl.Crop
	short := crop.Width
	if crop.Height < short {
		short = crop.Height
	}
	radius := float64(int(float64(short) / 10))

	center := magick.Point{
		X: float64(crop.Width) - radius*1.5,
		Y: float64(crop.Height) - radius*1.5,
	}
	if isl.CalendarCorner() == island.CornerLeft {
		center.X = radius * 1.5
	}
	return center, radius
}

// CropCommand builds the command that crops a full tile down to the
// island's region.
func CropCommand(input string, isl island.Island, output string) *magick.Command {
	cmd := magick.New(input, output)
	cmd.AddCrop(isl.Crop.Width, isl.Crop.Height, isl.Crop.X, isl.Crop.Y)
	return cmd
}

// DateCommand builds the command that stamps a cropped frame with the
// calendar widget and the acquisition-date marker.
func DateCommand(input string, isl island.Island, date time.Time, output string) *magick.Command {
	cmd := magick.New(input, output)
	center, radius := Placement(isl)
	Calendar(cmd, center, radius)
	Marker(cmd, center, radius, date)
	return cmd
}
