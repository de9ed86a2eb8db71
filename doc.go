// Package seedfill provides morphological seedfill and grayscale
// reconstruction for packed raster images.
//
// # Overview
//
// A seedfill grows a seed image inside a mask image until nothing more can
// change. seedfill implements the classic operations on word-packed buffers
// from the pix package:
//   - Binary seedfill (1 bpp), 4- or 8-connected
//   - Hybrid grayscale seedfill (8 bpp) in the forward and inverse directions
//   - Simple grayscale seedfill, one raster and one antiraster pass per call
//   - Distance function (8 or 16 bpp), city-block or chessboard
//   - Seed spreading (nearest-seed labelling)
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/seedfill"
//	    "github.com/gogpu/seedfill/pix"
//	)
//
//	src, _ := pix.Load("page.png", pix.Depth1)
//
//	// Foreground with its holes filled
//	filled, err := seedfill.FillClosedBorders(src, seedfill.Conn4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = filled.Save("filled.png")
//
// # In-place and allocating operations
//
// SeedfillBinary, SeedfillGray, SeedfillGrayInv, SeedfillGraySimple,
// SeedfillGrayInvSimple, DistanceFunction and Seedspread modify the seed
// buffer in place and leave the mask untouched. The higher level operations
// (HolesByFilling, DistanceTransform, SeedspreadImage and others) return new
// buffers and take Options.
//
// # Concurrency
//
// Every operation is sequential over one buffer pair. Independent operations
// on disjoint buffers may run concurrently; Runner does that on a fixed set
// of goroutines.
//
// # Coordinate System
//
// Row i counts down from the top, column j counts right from the left.
// Pixel (0, 0) is the top-left corner.
package seedfill

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
