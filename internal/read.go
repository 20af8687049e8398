package internal

import (
	"fmt"
	"os"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// DateTags holds the three EXIF DateTime slots read back from a file, as raw
// strings in the YYYY:MM:DD HH:MM:SS layout.
type DateTags struct {
	DateTime          string `json:"date_time"`
	DateTimeOriginal  string `json:"date_time_original"`
	DateTimeDigitized string `json:"date_time_digitized"`
}

// Identical reports whether all three slots carry the same non-empty value.
func (d DateTags) Identical() bool {
	return d.DateTime != "" && d.DateTime == d.DateTimeOriginal && d.DateTime == d.DateTimeDigitized
}

// DateReader reads the DateTime family tags from a JPEG file.
type DateReader interface {
	ReadDates(path string) (DateTags, error)
	Close() error
}

// GoexifReader reads EXIF dates with the pure-Go goexif decoder.
type GoexifReader struct{}

func NewGoexifReader() *GoexifReader {
	return &GoexifReader{}
}

func (r *GoexifReader) ReadDates(path string) (DateTags, error) {
	f, err := os.Open(path)
	if err != nil {
		return DateTags{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return DateTags{}, fmt.Errorf("failed to decode EXIF from %s: %w", path, err)
	}

	var tags DateTags
	fields := []struct {
		name exif.FieldName
		dest *string
	}{
		{exif.DateTime, &tags.DateTime},
		{exif.DateTimeOriginal, &tags.DateTimeOriginal},
		{exif.DateTimeDigitized, &tags.DateTimeDigitized},
	}
	for _, fld := range fields {
		tag, err := x.Get(fld.name)
		if err != nil {
			continue // slot absent, leave empty
		}
		val, err := tag.StringVal()
		if err != nil {
			return DateTags{}, fmt.Errorf("failed to read %s from %s: %w", fld.name, path, err)
		}
		*fld.dest = val
	}

	return tags, nil
}

func (r *GoexifReader) Close() error {
	return nil
}

// ExiftoolReader reads EXIF dates through the external exiftool binary.
// exiftool reports DateTime as ModifyDate and DateTimeDigitized as CreateDate.
type ExiftoolReader struct {
	et *exiftool.Exiftool
}

func NewExiftoolReader() (*ExiftoolReader, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("failed to start exiftool: %w", err)
	}
	return &ExiftoolReader{et: et}, nil
}

func (r *ExiftoolReader) ReadDates(path string) (DateTags, error) {
	metas := r.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return DateTags{}, fmt.Errorf("exiftool returned no metadata for %s", path)
	}
	fm := metas[0]
	if fm.Err != nil {
		return DateTags{}, fmt.Errorf("exiftool failed on %s: %w", path, fm.Err)
	}

	var tags DateTags
	if v, err := fm.GetString("ModifyDate"); err == nil {
		tags.DateTime = v
	}
	if v, err := fm.GetString("DateTimeOriginal"); err == nil {
		tags.DateTimeOriginal = v
	}
	if v, err := fm.GetString("CreateDate"); err == nil {
		tags.DateTimeDigitized = v
	}

	return tags, nil
}

func (r *ExiftoolReader) Close() error {
	return r.et.Close()
}
