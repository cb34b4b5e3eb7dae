// Package imageio moves pixels between encoded image files and
// pixlayout images.
//
// Decoding produces a [pixlayout.Image] of float32 samples normalized to
// [0, 1], laid out as one interleaved RGB or RGBA group, optionally
// followed by a planar depth channel:
//
//	img, err := imageio.DecodeFile("plate.tif", imageio.WithDepth())
//	if err != nil {
//	    return err
//	}
//	for y, row := range img.Rows() {
//	    ...
//	}
//
// OpenEXR files decode differently: every channel named in the header gets
// its own planar float32 buffer, samples keep their range, and the data
// and display windows come from the header.
//
// Encoding walks the rows of any valid float32 image whose channels are
// drawn from red, green, blue, alpha and depth. Only OpenEXR writes depth.
//
// Supported formats: PNG, JPEG, TIFF, BMP and scanline OpenEXR for both
// directions, WebP for decoding only.
package imageio
