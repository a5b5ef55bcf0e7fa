// Package pix provides device-independent pixel formats and bitmaps.
//
// # Overview
//
// pix is the raster foundation beneath image codecs and scalers in the
// GoGPU ecosystem. It defines self-describing pixel format identifiers,
// a query layer answering channel layout questions about them, and a
// Bitmap type whose backing buffers are shared by reference counting
// across views, with copy-on-write available through Autonomize.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pix"
//	    "github.com/gogpu/pix/convert"
//	)
//
//	// Allocate a 640x480 RGBA bitmap
//	bmp, err := pix.NewBitmap(640, 480, pix.FormatR8G8B8A8Unsigned)
//	if err != nil {
//	    ...
//	}
//
//	// Work on a 100x100 window into it without copying
//	view, err := bmp.View(10, 10, 100, 100)
//
//	// Convert the whole image to 16-bit channels
//	wide, err := convert.ConvertTo(bmp, pix.FormatR16G16B16A16UnsignedNative16)
//
// # Formats
//
// A Format packs its block size, bits per pixel and channel count into
// the identifier itself, so stride and allocation arithmetic needs no
// table lookup. Everything else about a format (channel positions and
// widths, signedness, float-ness) is answered by query methods backed
// by a descriptor table; formats added to the table become convertible
// everywhere without further code.
//
// # Memory Model
//
// A Bitmap either owns a fresh allocation, shares one with views
// derived from it, or borrows caller-supplied memory it will never
// free. Views inherit the parent's stride and see its pixels live;
// a parent released while views remain leaves the views valid.
//
// # Architecture
//
// The module is organized into:
//   - Root package: formats, queries, BitmapMemory, Bitmap, PixelIterator
//   - convert: row converters and whole-bitmap conversion between any two formats
//   - scale: resampling via golang.org/x/image/draw
//   - colormodel: HSV, HSL and YUV color model conversions
//   - half: IEEE 754 binary16 channel arithmetic
//   - gpuformat: mapping onto WebGPU texture formats
//
// # Concurrency
//
// Format queries and conversions are pure. Distinct bitmaps may be used
// from different goroutines, including bitmaps sharing one buffer, as
// long as written pixel regions do not overlap; mutating a single
// Bitmap concurrently requires external synchronization.
package pix
