// Package fill implements the scan loops of the seedfill engine.
//
// All functions here work in place on caller-owned pix.Buffer values and
// assume their arguments were validated by the public seedfill package:
// connectivity is 4 or 8, depths are correct, and grayscale buffers share
// width and height.
//
// Algorithms:
//   - BinaryPass: one raster + antiraster pass of 1 bpp seedfill over packed words
//   - Gray: Vincent's hybrid grayscale reconstruction (two scans + FIFO propagation)
//   - GraySimple: the two scans without the queue (one iteration per call)
//   - Distance: two-pass city-block (4) / chessboard (8) distance transform
//   - Seedspread: nearest-seed value propagation driven by a 16 bpp distance map
//
// The grayscale loops are written once against a neighborhood table and a
// Direction, both chosen once per call.
package fill
