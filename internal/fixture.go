package internal

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"strings"

	"github.com/disintegration/imaging"
)

// Fixture describes one sample JPEG to generate: a uniform-color raster with
// an EXIF creation timestamp embedded in all three DateTime slots.
type Fixture struct {
	Path      string
	Timestamp string
	Width     int
	Height    int
	Fill      color.NRGBA
	Quality   int
	Make      string
	Model     string
	Software  string
}

// namedColors covers the fills fixtures are generated with. Anything else
// must be given as #rrggbb.
var namedColors = map[string]color.NRGBA{
	"red":   {R: 255, A: 255},
	"green": {G: 255, A: 255},
	"blue":  {B: 255, A: 255},
	"white": {R: 255, G: 255, B: 255, A: 255},
	"black": {A: 255},
	"gray":  {R: 128, G: 128, B: 128, A: 255},
}

// ParseColor resolves a color name or #rrggbb hex string to an NRGBA fill.
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q (use a name like red or #rrggbb)", s)
}

// NewFixture builds a Fixture from config defaults for the given path.
func NewFixture(path, timestamp string, cfg *Config) (Fixture, error) {
	fill, err := ParseColor(cfg.Color)
	if err != nil {
		return Fixture{}, err
	}
	return Fixture{
		Path:      path,
		Timestamp: timestamp,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Fill:      fill,
		Quality:   cfg.Quality,
		Make:      cfg.Make,
		Model:     cfg.Model,
		Software:  cfg.Software,
	}, nil
}

// CreateSampleImage renders the fixture raster, embeds the EXIF block and
// writes the JPEG to fx.Path. The parent directory must already exist; a
// failed encode or write leaves no file at the path.
func CreateSampleImage(fx Fixture) error {
	if err := ValidateTimestamp(fx.Timestamp); err != nil {
		return err
	}

	img := imaging.New(fx.Width, fx.Height, fx.Fill)

	var buf bytes.Buffer
	options := &jpeg.Options{Quality: fx.Quality}
	if err := jpeg.Encode(&buf, img, options); err != nil {
		return fmt.Errorf("failed to encode JPEG for %s: %w", fx.Path, err)
	}

	data, err := EmbedExif(buf.Bytes(), TagSet{
		Make:              fx.Make,
		Model:             fx.Model,
		Software:          fx.Software,
		DateTime:          fx.Timestamp,
		DateTimeOriginal:  fx.Timestamp,
		DateTimeDigitized: fx.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to embed EXIF for %s: %w", fx.Path, err)
	}

	if err := writeFileAtomic(fx.Path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", fx.Path, err)
	}

	fmt.Printf("Created %s with date %s\n", fx.Path, fx.Timestamp)
	return nil
}
