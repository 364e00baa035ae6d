package engine

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

const (
	tilePrefix = "T12"
	tciSuffix  = "TCI.jpg"
	dateLayout = "20060102"
	dateOffset = 7
)

// Discover lists the tile's TCI files in the source directory. Filenames
// carry a zero-padded YYYYMMDD date, so lexicographic order is
// chronological order.
func Discover(dir, tile string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, tilePrefix+tile) && strings.HasSuffix(name, tciSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// AcquisitionDate parses the 8-character date token at the fixed offset of
// a Sentinel TCI filename, e.g. T12RVP_20210101_TCI.jpg.
func AcquisitionDate(name string) (time.Time, error) {
	if len(name) < dateOffset+len(dateLayout) {
		return time.Time{}, fmt.Errorf("filename %s is too short to hold an acquisition date", name)
	}
	token := name[dateOffset : dateOffset+len(dateLayout)]
	date, err := time.Parse(dateLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed acquisition date %q in %s: %w", token, name, err)
	}
	return date, nil
}
