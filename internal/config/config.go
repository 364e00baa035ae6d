package config

// Config carries the settings for one animation run.
type Config struct {
	InputDir    string // directory holding the source TCI files
	Island      string // island name, resolved against the registry
	Destination string // output GIF path; derived from the island when empty
	WorkDir     string // where intermediate frames are written
	IslandsFile string // optional YAML registry overriding the built-ins
	ConvertTool string // renderer binary; "auto" probes for magick/convert
	DelayCS     int    // animation frame delay in centiseconds
	DryRun      bool   // print commands instead of running them
	Keep        bool   // retain intermediate frames after a live run
}
