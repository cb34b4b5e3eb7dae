package imageio

import (
	"errors"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  error
	}{
		{"x.png", FormatPNG, nil},
		{"dir/x.JPG", FormatJPEG, nil},
		{"x.jpeg", FormatJPEG, nil},
		{"x.tif", FormatTIFF, nil},
		{"x.tiff", FormatTIFF, nil},
		{"x.bmp", FormatBMP, nil},
		{"x.webp", FormatWebP, nil},
		{"x.EXR", FormatEXR, nil},
		{"x.gif", 0, ErrUnsupportedFormat},
		{"noext", 0, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Fatalf("error = %v, want %v", err, tt.err)
			}
			if err == nil && got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatInfo(t *testing.T) {
	for f := range formatCount {
		info := f.Info()
		if info.Name == "" || len(info.Extensions) == 0 {
			t.Errorf("%d: incomplete info %+v", f, info)
		}
		got, err := FormatFromName(info.Name)
		if err != nil || got != f {
			t.Errorf("FormatFromName(%q) = %v, %v", info.Name, got, err)
		}
	}
	if FormatWebP.Info().CanEncode {
		t.Error("WebP should be decode only")
	}
	if FormatJPEG.Info().HasAlpha || !FormatPNG.Info().HasAlpha {
		t.Error("alpha support is wrong")
	}
	if formatCount.IsValid() || formatCount.Info().Name != "" {
		t.Error("formatCount should be invalid")
	}
	if got := formatCount.String(); got != "Format(6)" {
		t.Errorf("String() = %q", got)
	}
	if _, err := FormatFromName("gif"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromName(gif) error = %v", err)
	}
}
