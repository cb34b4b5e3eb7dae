package pixlayout

import (
	"testing"

	"github.com/gogpu/pixlayout/channel"
)

func TestNewImage_Defaults(t *testing.T) {
	img, err := NewImage[float32](MustChannelLayout(channel.Red))
	if err != nil {
		t.Fatal(err)
	}
	if img.DisplayWindow() != img.DataWindow() {
		t.Errorf("windows differ: %v %v", img.DataWindow(), img.DisplayWindow())
	}
	if img.IsValid() {
		t.Error("image without a data window is valid")
	}
}

func TestImageOptions(t *testing.T) {
	data := NewBox(-16, -16, 1935, 1095)
	display := NewBox(0, 0, 1919, 1079)

	tests := []struct {
		name        string
		opts        []ImageOption
		wantData    Box
		wantDisplay Box
	}{
		{
			name:        "size",
			opts:        []ImageOption{WithSize(4, 3)},
			wantData:    NewBox(0, 0, 3, 2),
			wantDisplay: NewBox(0, 0, 3, 2),
		},
		{
			name:        "data window only",
			opts:        []ImageOption{WithDataWindow(data)},
			wantData:    data,
			wantDisplay: data,
		},
		{
			name:        "overscan",
			opts:        []ImageOption{WithDisplayWindow(display), WithDataWindow(data)},
			wantData:    data,
			wantDisplay: display,
		},
		{
			name:        "later option wins",
			opts:        []ImageOption{WithDisplayWindow(display), WithSize(2, 2)},
			wantData:    NewBox(0, 0, 1, 1),
			wantDisplay: NewBox(0, 0, 1, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage[uint8](MustBrothersLayout(channel.GroupRGBA), tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if img.DataWindow() != tt.wantData {
				t.Errorf("DataWindow() = %v, want %v", img.DataWindow(), tt.wantData)
			}
			if img.DisplayWindow() != tt.wantDisplay {
				t.Errorf("DisplayWindow() = %v, want %v", img.DisplayWindow(), tt.wantDisplay)
			}
		})
	}
}
