package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overridden from the embedded VERSION file at startup.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Fixturegen EXIF test image generator",
}

func Execute() error {
	return rootCmd.Execute()
}

// ApplyVersion pushes the current Version value onto the root command.
func ApplyVersion() {
	rootCmd.Version = Version
}

func init() {
	ApplyVersion()
}
