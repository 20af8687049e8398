package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// VerifyOptions contains configuration for fixture verification
type VerifyOptions struct {
	Format      string // table, json
	UseExiftool bool
}

// FileDates pairs a scanned file with the date tags read from it.
type FileDates struct {
	Path  string   `json:"path"`
	Tags  DateTags `json:"tags"`
	Error string   `json:"error,omitempty"`
}

// VerifyReport contains the verification results for one folder scan.
type VerifyReport struct {
	FolderPath string      `json:"folder_path"`
	TotalFiles int         `json:"total_files"`
	Files      []FileDates `json:"files"`
	Identical  bool        `json:"identical"`
	SharedDate string      `json:"shared_date,omitempty"`
}

// BuildVerifyReport reads the DateTime family tags of every image under
// folder and determines whether the whole set carries one identical
// timestamp. Files whose EXIF cannot be read count against identity.
func BuildVerifyReport(folder string, files []string, reader DateReader) *VerifyReport {
	report := &VerifyReport{
		FolderPath: folder,
		TotalFiles: len(files),
	}

	dates := make(map[string]int)
	readable := 0

	for _, path := range files {
		fd := FileDates{Path: path}
		tags, err := reader.ReadDates(path)
		if err != nil {
			fd.Error = err.Error()
		} else {
			fd.Tags = tags
			if tags.DateTimeOriginal != "" {
				dates[tags.DateTimeOriginal]++
				readable++
			}
		}
		report.Files = append(report.Files, fd)
	}

	// Identical means: every file was readable, every file agrees across its
	// own three slots, and all files share one DateTimeOriginal.
	if readable == len(files) && len(files) > 0 && len(dates) == 1 {
		report.Identical = true
		for _, fd := range report.Files {
			if !fd.Tags.Identical() {
				report.Identical = false
				break
			}
		}
		if report.Identical {
			report.SharedDate = report.Files[0].Tags.DateTimeOriginal
		}
	}

	return report
}

// DisplayVerifyReport renders the report in the requested format.
func DisplayVerifyReport(report *VerifyReport, options *VerifyOptions) error {
	if options.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Folder: %s\n", report.FolderPath)
	fmt.Printf("Files:  %d\n\n", report.TotalFiles)

	sorted := make([]FileDates, len(report.Files))
	copy(sorted, report.Files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, fd := range sorted {
		if fd.Error != "" {
			fmt.Printf("  %-40s  <unreadable: %s>\n", fd.Path, fd.Error)
			continue
		}
		fmt.Printf("  %-40s  DateTime=%s  Original=%s  Digitized=%s\n",
			fd.Path, fd.Tags.DateTime, fd.Tags.DateTimeOriginal, fd.Tags.DateTimeDigitized)
	}

	fmt.Println()
	if report.Identical {
		fmt.Printf("All files share the creation date %s\n", report.SharedDate)
	} else {
		fmt.Println("Files do NOT share an identical creation date")
	}

	return nil
}
