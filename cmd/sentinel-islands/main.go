package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ivlev/sentinel-islands/internal/config"
	"github.com/ivlev/sentinel-islands/internal/engine"
	"github.com/ivlev/sentinel-islands/internal/island"
	"github.com/ivlev/sentinel-islands/internal/system"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Config{}
	var run bool

	rootCmd := &cobra.Command{
		Use:   "sentinel-islands <input_directory> <island>",
		Short: "Animate Sentinel-2 true-color crops of an island",
		Long: `Crops each true-color tile image to an island, stamps it with a circular
calendar marking the acquisition date, and assembles the frames into a
looping GIF. Without --run the intended ImageMagick commands are printed
and nothing is executed.

The input directory may be omitted when SENTINEL_TCI_DIR is set.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, args []string) error {
			switch len(args) {
			case 2:
				cfg.InputDir, cfg.Island = args[0], args[1]
			case 1:
				cfg.InputDir = os.Getenv("SENTINEL_TCI_DIR")
				if cfg.InputDir == "" {
					return errors.New("no input directory given and SENTINEL_TCI_DIR is not set")
				}
				cfg.Island = args[0]
			}
			cfg.DryRun = !run
			return animate(&cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.Destination, "destination", "d", "", "destination gif file (default <island>-animated.gif)")
	rootCmd.Flags().BoolVar(&run, "run", false, "actually run the ImageMagick commands")
	rootCmd.Flags().BoolVar(&cfg.Keep, "keep", false, "keep intermediate frames after a live run")
	rootCmd.Flags().IntVar(&cfg.DelayCS, "delay", 100, "animation frame delay in centiseconds")
	rootCmd.Flags().StringVar(&cfg.WorkDir, "workdir", ".", "directory for intermediate frames")
	rootCmd.Flags().StringVar(&cfg.ConvertTool, "renderer", "auto", "renderer binary: auto, convert or magick")
	rootCmd.PersistentFlags().StringVar(&cfg.IslandsFile, "islands", "", "YAML island registry overriding the built-ins")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "islands",
		Short: "Print the active island registry as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := registry(cfg.IslandsFile)
			if err != nil {
				return err
			}
			return reg.Encode(os.Stdout)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func registry(path string) (*island.Registry, error) {
	if path == "" {
		return island.Builtin(), nil
	}
	return island.Load(path)
}

func animate(cfg *config.Config) error {
	reg, err := registry(cfg.IslandsFile)
	if err != nil {
		return err
	}
	isl, err := reg.Lookup(cfg.Island)
	if err != nil {
		return err
	}

	if cfg.ConvertTool == "auto" || cfg.ConvertTool == "" {
		// Probing the renderer is itself an external invocation, so dry
		// runs stick with the classic binary name.
		cfg.ConvertTool = "convert"
		if !cfg.DryRun {
			cfg.ConvertTool = system.DetectConvertTool()
		}
	}
	if !cfg.DryRun {
		system.InitResourceLimits()
		system.LogHostResources()
	}

	return engine.New(cfg, isl).Run()
}
