package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/sentinel-islands/internal/annotate"
	"github.com/ivlev/sentinel-islands/internal/config"
	"github.com/ivlev/sentinel-islands/internal/island"
	"github.com/ivlev/sentinel-islands/internal/magick"
)

// frame couples a discovered source file with its parsed acquisition date.
type frame struct {
	Name string
	Date time.Time
}

// Animator drives the crop -> annotate -> assemble pipeline for one island.
// Processing is strictly sequential; each renderer invocation blocks until
// the external process exits.
type Animator struct {
	cfg *config.Config
	isl island.Island

	frames        []string
	intermediates []string
}

// New creates an animator for one island run.
func New(cfg *config.Config, isl island.Island) *Animator {
	return &Animator{cfg: cfg, isl: isl}
}

// Run executes the full pipeline: discovery, per-frame crop and
// annotation, animation assembly, and cleanup of intermediates. In dry-run
// mode every command is printed and nothing touches the file system.
func (a *Animator) Run() error {
	sources, err := a.discover()
	if err != nil {
		return err
	}

	fmt.Println("Going to process:")
	for _, src := range sources {
		fmt.Printf("  %s\n", src.Name)
	}

	for _, src := range sources {
		a.processFrame(src)
	}

	dest := a.cfg.Destination
	if dest == "" {
		dest = strings.ToLower(a.isl.Name) + "-animated.gif"
	}
	anim := magick.NewAnimation(a.frames, dest, a.cfg.DelayCS)
	anim.SetTool(a.cfg.ConvertTool)
	// Renderer failures are reported per step and the run carries on; the
	// per-step success/failure lines tell the operator which frames to
	// regenerate.
	_ = anim.Execute("animate", a.cfg.DryRun)

	return a.cleanup()
}

// discover lists the island's TCI files in chronological order and parses
// every acquisition date up front, so a malformed filename aborts the run
// before the first renderer call.
func (a *Animator) discover() ([]frame, error) {
	names, err := Discover(a.cfg.InputDir, a.isl.Tile)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no %s%s*%s files in %s", tilePrefix, a.isl.Tile, tciSuffix, a.cfg.InputDir)
	}

	sources := make([]frame, len(names))
	for i, name := range names {
		date, err := AcquisitionDate(name)
		if err != nil {
			return nil, err
		}
		sources[i] = frame{Name: name, Date: date}
	}
	return sources, nil
}

func (a *Animator) processFrame(src frame) {
	dateStr := src.Date.Format(dateLayout)
	tile := strings.ToLower(a.isl.Tile)
	fmt.Printf("processing %s (%s)\n", src.Date.Format("2006-01-02"), src.Name)

	input := filepath.Join(a.cfg.InputDir, src.Name)
	cropped := filepath.Join(a.cfg.WorkDir, fmt.Sprintf("%s_%s.jpg", tile, dateStr))
	crop := annotate.CropCommand(input, a.isl, cropped)
	crop.SetTool(a.cfg.ConvertTool)
	_ = crop.Execute("    crop", a.cfg.DryRun)
	a.track(cropped)

	annotated := filepath.Join(a.cfg.WorkDir, fmt.Sprintf("%s_%s_annotated.jpg", tile, dateStr))
	stamp := annotate.DateCommand(cropped, a.isl, src.Date, annotated)
	stamp.SetTool(a.cfg.ConvertTool)
	_ = stamp.Execute("    annotate", a.cfg.DryRun)

	a.frames = append(a.frames, annotated)
	a.track(annotated)
}

// track records an intermediate for deletion. Dry runs create no files, so
// there is nothing to delete afterwards.
func (a *Animator) track(path string) {
	if !a.cfg.DryRun {
		a.intermediates = append(a.intermediates, path)
	}
}

// cleanup removes the tracked intermediates. A failed removal is fatal:
// leftover frames would silently leak into the next animation's glob.
func (a *Animator) cleanup() error {
	if a.cfg.Keep && len(a.intermediates) > 0 {
		fmt.Printf("[*] Keeping %d intermediate frames in %s\n", len(a.intermediates), a.cfg.WorkDir)
		return nil
	}
	for _, path := range a.intermediates {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove intermediate %s: %w", path, err)
		}
	}
	return nil
}
