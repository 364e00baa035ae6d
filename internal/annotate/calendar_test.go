package annotate

import (
	"math"
	"strings"
	"testing"

	"github.com/ivlev/sentinel-islands/internal/magick"
)

func TestTickAnglesEvenlySpaced(t *testing.T) {
	step := 2 * math.Pi / 12

	if got := tickAngle(0); math.Abs(got-(-math.Pi/2)) > 1e-12 {
		t.Errorf("tick 0 should point straight up (-pi/2), got %f", got)
	}

	for i := 1; i < 12; i++ {
		gap := tickAngle(float64(i)) - tickAngle(float64(i-1))
		if math.Abs(gap-step) > 1e-12 {
			t.Errorf("gap between tick %d and %d = %f, want %f", i-1, i, gap, step)
		}
	}
}

func TestOnCircle(t *testing.T) {
	center := magick.Point{X: 100, Y: 100}

	up := onCircle(center, 40, -math.Pi/2)
	if math.Abs(up.X-100) > 1e-9 || math.Abs(up.Y-60) > 1e-9 {
		t.Errorf("point at -pi/2 should be straight above center, got (%f,%f)", up.X, up.Y)
	}

	right := onCircle(center, 40, 0)
	if math.Abs(right.X-140) > 1e-9 || math.Abs(right.Y-100) > 1e-9 {
		t.Errorf("point at 0 should be right of center, got (%f,%f)", right.X, right.Y)
	}
}

func TestCalendarContents(t *testing.T) {
	cmd := magick.New("in.jpg", "out.jpg")
	Calendar(cmd, magick.Point{X: 340, Y: 740}, 40)
	got := cmd.String()

	if !strings.Contains(got, `"circle 340,740 380,740"`) {
		t.Errorf("missing calendar circle: %q", got)
	}
	if n := strings.Count(got, `"line `); n != 12 {
		t.Errorf("calendar should have 12 month ticks, found %d: %q", n, got)
	}
	// Only the four quarter months are labeled; the sparse labeling is
	// intentional and must not grow to 12.
	for _, label := range []string{"'Jan'", "'Apr'", "'Jul'", "'Oct'"} {
		if !strings.Contains(got, label) {
			t.Errorf("missing %s label: %q", label, got)
		}
	}
	if n := strings.Count(got, `"text `); n != 4 {
		t.Errorf("calendar should have exactly 4 labels, found %d", n)
	}
	if !strings.Contains(got, "-pointsize 6") {
		t.Errorf("label font size should be radius/6: %q", got)
	}
	if !strings.Contains(got, "-fill none") || !strings.Contains(got, "-stroke white") || !strings.Contains(got, "-strokewidth 3") {
		t.Errorf("calendar styling missing: %q", got)
	}
}
