package pixlayout

// ImageOption configures an Image during creation.
//
// Example:
//
//	// 1920x1080 image whose display window matches its data window
//	img, err := pixlayout.NewImage[float32](layout, pixlayout.WithSize(1920, 1080))
//
//	// Overscan: data window larger than the display window
//	img, err := pixlayout.NewImage[float32](layout,
//	    pixlayout.WithDisplayWindow(pixlayout.NewBox(0, 0, 1919, 1079)),
//	    pixlayout.WithDataWindow(pixlayout.NewBox(-16, -16, 1935, 1095)))
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for Image creation.
type imageOptions struct {
	dataWindow    *Box
	displayWindow *Box
}

// WithDataWindow sets the data window, the box of stored pixels.
func WithDataWindow(b Box) ImageOption {
	return func(o *imageOptions) {
		o.dataWindow = &b
	}
}

// WithDisplayWindow sets the display window. When omitted it defaults to
// the data window.
func WithDisplayWindow(b Box) ImageOption {
	return func(o *imageOptions) {
		o.displayWindow = &b
	}
}

// WithSize sets both windows to width x height pixels with the origin at
// (0, 0).
func WithSize(width, height int) ImageOption {
	return func(o *imageOptions) {
		b := NewBox(0, 0, width-1, height-1)
		o.dataWindow = &b
		o.displayWindow = &b
	}
}
