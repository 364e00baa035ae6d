package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/sentinel-islands/internal/config"
	"github.com/ivlev/sentinel-islands/internal/island"
)

func danzante(t *testing.T) island.Island {
	t.Helper()
	isl, err := island.Builtin().Lookup("Danzante")
	require.NoError(t, err)
	return isl
}

func TestDryRunTouchesNothing(t *testing.T) {
	inputDir := t.TempDir()
	workDir := t.TempDir()
	writeFiles(t, inputDir,
		"T12RVP_20200101_TCI.jpg",
		"T12RVP_20210101_TCI.jpg",
	)

	cfg := &config.Config{
		InputDir:    inputDir,
		Island:      "Danzante",
		WorkDir:     workDir,
		ConvertTool: "convert",
		DelayCS:     100,
		DryRun:      true,
	}

	require.NoError(t, New(cfg, danzante(t)).Run())

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a dry run must not create intermediate files")

	_, err = os.Stat("danzante-animated.gif")
	assert.True(t, os.IsNotExist(err), "a dry run must not write the destination")
}

func TestDryRunRecordsFramesInDiscoveryOrder(t *testing.T) {
	inputDir := t.TempDir()
	writeFiles(t, inputDir,
		"T12RVP_20210101_TCI.jpg",
		"T12RVP_20200101_TCI.jpg",
	)

	cfg := &config.Config{
		InputDir:    inputDir,
		WorkDir:     t.TempDir(),
		ConvertTool: "convert",
		DelayCS:     100,
		DryRun:      true,
	}
	a := New(cfg, danzante(t))
	require.NoError(t, a.Run())

	require.Len(t, a.frames, 2)
	assert.Contains(t, a.frames[0], "rvp_20200101_annotated.jpg")
	assert.Contains(t, a.frames[1], "rvp_20210101_annotated.jpg")
	assert.Empty(t, a.intermediates, "dry runs track nothing for deletion")
}

func TestLiveRunContinuesPastRendererFailures(t *testing.T) {
	inputDir := t.TempDir()
	writeFiles(t, inputDir,
		"T12RVP_20210101_TCI.jpg",
		"T12RVP_20200101_TCI.jpg",
	)

	cfg := &config.Config{
		InputDir:    inputDir,
		WorkDir:     t.TempDir(),
		ConvertTool: "false", // every renderer call exits nonzero
		DelayCS:     100,
		Keep:        true, // the failing renderer writes nothing to delete
	}
	a := New(cfg, danzante(t))
	require.NoError(t, a.Run(), "renderer failures are reported per step, not escalated")

	require.Len(t, a.frames, 2, "failed frames still join the animation list")
	assert.Contains(t, a.frames[0], "rvp_20200101_annotated.jpg")
	assert.Contains(t, a.frames[1], "rvp_20210101_annotated.jpg")
	assert.Len(t, a.intermediates, 4, "live runs track both intermediates per frame")
}

func seedIntermediates(t *testing.T, a *Animator, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(a.cfg.WorkDir, name)
		require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0644))
		a.intermediates = append(a.intermediates, path)
		paths = append(paths, path)
	}
	return paths
}

func TestCleanupRemovesIntermediates(t *testing.T) {
	a := New(&config.Config{WorkDir: t.TempDir()}, danzante(t))
	seedIntermediates(t, a, "rvp_20200101.jpg", "rvp_20200101_annotated.jpg")

	require.NoError(t, a.cleanup())

	entries, err := os.ReadDir(a.cfg.WorkDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "all tracked intermediates must be deleted")
}

func TestCleanupKeepRetainsIntermediates(t *testing.T) {
	a := New(&config.Config{WorkDir: t.TempDir(), Keep: true}, danzante(t))
	paths := seedIntermediates(t, a, "rvp_20200101.jpg", "rvp_20200101_annotated.jpg")

	require.NoError(t, a.cleanup())

	for _, path := range paths {
		_, err := os.Stat(path)
		assert.NoError(t, err, "keep mode must leave %s in place", path)
	}
}

func TestCleanupMissingIntermediateIsFatal(t *testing.T) {
	a := New(&config.Config{WorkDir: t.TempDir()}, danzante(t))
	seedIntermediates(t, a, "rvp_20200101.jpg")
	a.intermediates = append(a.intermediates, filepath.Join(a.cfg.WorkDir, "rvp_20210101.jpg"))

	err := a.cleanup()
	require.Error(t, err, "a failed deletion propagates as fatal")
	assert.ErrorContains(t, err, "failed to remove intermediate")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFailsFastOnEmptyDirectory(t *testing.T) {
	cfg := &config.Config{
		InputDir: t.TempDir(),
		WorkDir:  t.TempDir(),
		DryRun:   true,
	}
	err := New(cfg, danzante(t)).Run()
	assert.ErrorContains(t, err, "no T12RVP")
}

func TestRunFailsFastOnMalformedDate(t *testing.T) {
	inputDir := t.TempDir()
	writeFiles(t, inputDir, "T12RVP_2021XX01_TCI.jpg")

	cfg := &config.Config{
		InputDir: inputDir,
		WorkDir:  t.TempDir(),
		DryRun:   true,
	}
	err := New(cfg, danzante(t)).Run()
	assert.ErrorContains(t, err, "malformed acquisition date")
}
