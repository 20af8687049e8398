package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fixturegen/internal"
)

var (
	dirFlag     string
	dateFlag    string
	countFlag   int
	widthFlag   int
	heightFlag  int
	colorFlag   string
	qualityFlag int
	noManifest  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sample JPEGs with identical EXIF creation dates",
	Long: `Create a set of solid-color JPEG fixtures that all carry the same EXIF
DateTime, DateTimeOriginal and DateTimeDigitized values. With no flags this
produces four 100x100 red images dated 2024:01:15 14:30:00 in ./test_photos.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}

		// Flags override config defaults
		if dirFlag != "" {
			conf.OutputDir = dirFlag
		}
		if dateFlag != "" {
			conf.Date = dateFlag
		}
		if countFlag > 0 {
			conf.Count = countFlag
		}
		if widthFlag > 0 {
			conf.Width = widthFlag
		}
		if heightFlag > 0 {
			conf.Height = heightFlag
		}
		if colorFlag != "" {
			conf.Color = colorFlag
		}
		if qualityFlag > 0 {
			conf.Quality = qualityFlag
		}

		var session *internal.GenerateSession
		if !noManifest {
			sessionsRoot, err := internal.SessionsDir()
			if err != nil {
				return err
			}
			session, err = internal.NewGenerateSession(sessionsRoot, conf.OutputDir)
			if err != nil {
				return fmt.Errorf("failed to open generation session: %w", err)
			}
			defer session.Close()
		}

		return internal.GenerateFixtureSet(conf, session)
	},
}

func init() {
	generateCmd.Flags().StringVar(&dirFlag, "dir", "", "Output directory for fixtures")
	generateCmd.Flags().StringVar(&dateFlag, "date", "", "EXIF timestamp (YYYY:MM:DD HH:MM:SS)")
	generateCmd.Flags().IntVar(&countFlag, "count", 0, "Number of fixtures to generate")
	generateCmd.Flags().IntVar(&widthFlag, "width", 0, "Fixture width in pixels")
	generateCmd.Flags().IntVar(&heightFlag, "height", 0, "Fixture height in pixels")
	generateCmd.Flags().StringVar(&colorFlag, "color", "", "Fill color (name or #rrggbb)")
	generateCmd.Flags().IntVar(&qualityFlag, "quality", 0, "JPEG quality (1-100)")
	generateCmd.Flags().BoolVar(&noManifest, "no-manifest", false, "Skip writing the session manifest")

	rootCmd.AddCommand(generateCmd)
}
