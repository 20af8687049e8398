package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fixturegen/internal"
)

var (
	formatFlag   string
	exiftoolFlag bool
	watchFlag    bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [folder]",
	Short: "Check that all JPEGs in a folder share one EXIF creation date",
	Long: `Read the EXIF DateTime family tags of every image in the folder and report
whether the whole set carries an identical creation timestamp. Exits non-zero
when the dates diverge or any file's EXIF cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("folder does not exist or is not a directory: %s", folder)
		}

		// Load config for extension filtering
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}

		var reader internal.DateReader
		if exiftoolFlag {
			reader, err = internal.NewExiftoolReader()
			if err != nil {
				return err
			}
		} else {
			reader = internal.NewGoexifReader()
		}
		defer reader.Close()

		options := &internal.VerifyOptions{
			Format:      formatFlag,
			UseExiftool: exiftoolFlag,
		}

		if err := runVerify(folder, conf, reader, options); err != nil {
			return err
		}

		if watchFlag {
			return watchAndVerify(folder, conf, reader, options)
		}

		return nil
	},
}

// runVerify performs one verification pass over the folder.
func runVerify(folder string, conf *internal.Config, reader internal.DateReader, options *internal.VerifyOptions) error {
	files, err := internal.ScanImageFiles(folder, conf)
	if err != nil {
		return err
	}

	report := internal.BuildVerifyReport(folder, files, reader)

	if err := internal.DisplayVerifyReport(report, options); err != nil {
		return err
	}

	if !report.Identical {
		return fmt.Errorf("creation dates in %s are not identical", folder)
	}
	return nil
}

// watchAndVerify blocks, re-running verification whenever a fixture file in
// the folder changes. Verification failures are reported but do not stop the
// watch loop.
func watchAndVerify(folder string, conf *internal.Config, reader internal.DateReader, options *internal.VerifyOptions) error {
	watcher, err := internal.NewWatcher(folder, conf.ImageExt)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", folder, err)
	}
	defer watcher.Close()

	logger, err := internal.NewLogger("fixturegen.log")
	if err != nil {
		return err
	}
	defer logger.Close()

	fmt.Printf("\nWatching %s for changes (Ctrl-C to stop)...\n", folder)

	for {
		select {
		case event := <-watcher.Events():
			logger.Log("file event: %d %s", event.Type, event.Path)
			if err := runVerify(folder, conf, reader, options); err != nil {
				fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			}
		case err := <-watcher.Errors():
			logger.Log("watcher error: %v", err)
			fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
		}
	}
}

func init() {
	verifyCmd.Flags().StringVar(&formatFlag, "format", "table", "Output format: table, json")
	verifyCmd.Flags().BoolVar(&exiftoolFlag, "exiftool", false, "Read tags with the exiftool binary instead of the built-in decoder")
	verifyCmd.Flags().BoolVar(&watchFlag, "watch", false, "Keep watching the folder and re-verify on changes")

	rootCmd.AddCommand(verifyCmd)
}
