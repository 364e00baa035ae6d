package island

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// registryFile is the on-disk registry format.
type registryFile struct {
	Islands []Island `yaml:"islands"`
}

// Load reads an island registry from a YAML file and merges it over the
// built-in islands, so a file can both override crop regions and add new
// islands.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read island registry: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse island registry %s: %w", path, err)
	}

	r := Builtin()
	for _, isl := range file.Islands {
		if isl.Name == "" || isl.Tile == "" {
			return nil, fmt.Errorf("island registry %s: entries need both name and tile", path)
		}
		if isl.Crop.Width <= 0 || isl.Crop.Height <= 0 {
			return nil, fmt.Errorf("island registry %s: island %s has an empty crop region", path, isl.Name)
		}
		r.add(isl)
	}
	return r, nil
}

// Encode writes the registry as YAML, in name order.
func (r *Registry) Encode(w io.Writer) error {
	file := registryFile{}
	for _, name := range r.Names() {
		file.Islands = append(file.Islands, r.byName[strings.ToLower(name)])
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
