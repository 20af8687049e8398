package internal

import (
	"bytes"
	"fmt"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// ExifTimeLayout is the timestamp layout used by the EXIF DateTime family.
const ExifTimeLayout = "2006:01:02 15:04:05"

// TagSet holds the EXIF values embedded into a generated fixture. The three
// DateTime slots are kept separate because downstream tools read them
// independently, even though the generator sets them all equal.
type TagSet struct {
	Make              string
	Model             string
	Software          string
	DateTime          string
	DateTimeOriginal  string
	DateTimeDigitized string
}

// ValidateTimestamp checks that ts matches the EXIF "YYYY:MM:DD HH:MM:SS" layout.
func ValidateTimestamp(ts string) error {
	if _, err := time.Parse(ExifTimeLayout, ts); err != nil {
		return fmt.Errorf("invalid EXIF timestamp %q (want YYYY:MM:DD HH:MM:SS): %w", ts, err)
	}
	return nil
}

// EmbedExif returns a copy of jpegData with an APP1 EXIF segment carrying the
// given tags. The input must be a valid JPEG stream.
func EmbedExif(jpegData []byte, tags TagSet) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()

	intfc, err := jmp.ParseBytes(jpegData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JPEG stream: %w", err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("failed to create IFD mapping: %w", err)
	}
	ti := exif.NewTagIndex()

	rootIb := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)

	// Primary image IFD: camera identity, software and the primary timestamp.
	ifdIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return nil, fmt.Errorf("failed to get IFD0 builder: %w", err)
	}

	ifd0Tags := []struct {
		name  string
		value string
	}{
		{"Make", tags.Make},
		{"Model", tags.Model},
		{"Software", tags.Software},
		{"DateTime", tags.DateTime},
	}
	for _, t := range ifd0Tags {
		if t.value == "" {
			continue
		}
		if err := ifdIb.SetStandardWithName(t.name, t.value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", t.name, err)
		}
	}

	// Exif sub-IFD: capture and digitization timestamps.
	exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD/Exif")
	if err != nil {
		return nil, fmt.Errorf("failed to get Exif IFD builder: %w", err)
	}

	if tags.DateTimeOriginal != "" {
		if err := exifIb.SetStandardWithName("DateTimeOriginal", tags.DateTimeOriginal); err != nil {
			return nil, fmt.Errorf("failed to set DateTimeOriginal: %w", err)
		}
	}
	if tags.DateTimeDigitized != "" {
		if err := exifIb.SetStandardWithName("DateTimeDigitized", tags.DateTimeDigitized); err != nil {
			return nil, fmt.Errorf("failed to set DateTimeDigitized: %w", err)
		}
	}

	if err := sl.SetExif(rootIb); err != nil {
		return nil, fmt.Errorf("failed to attach EXIF segment: %w", err)
	}

	var buf bytes.Buffer
	if err := sl.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize JPEG with EXIF: %w", err)
	}

	return buf.Bytes(), nil
}
