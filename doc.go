// Package pipecore provides the format-translation and shader-interface
// linking core of a software graphics pipe.
//
// # Overview
//
// pipecore contains two tightly related subsystems:
//
//   - format: pixel-format descriptors, predicates, and a generic
//     translator that converts rectangular pixel regions between
//     heterogeneous formats (channel layouts, bit widths, colorspaces,
//     signedness) through a per-format pack/unpack capability table.
//   - varying: shader stage interface linking — dead-varying removal,
//     component compaction into the minimum number of interpolant slots,
//     and deterministic storage-location assignment for producer/consumer
//     stage pairs.
//
// # Quick Start
//
//	import "github.com/gogpu/pipecore/format"
//
//	src := &format.Surface{Pix: srcPix, Stride: 4 * w}
//	dst := &format.Surface{Pix: dstPix, Stride: 4 * w}
//	err := format.Translate(format.RGBA8Unorm, dst, 0, 0,
//		format.BGRA8Unorm, src, 0, 0, w, h)
//
// # Architecture
//
// The library is organized into:
//   - format: descriptor table, predicates, compatibility checker,
//     rect copy, swizzle utilities, generic translator
//   - varying: usage analysis, removal, compaction, location assignment
//   - gpuformat: mapping between WebGPU texture formats (gogpu/gputypes)
//     and pipecore format identifiers
//   - nagalink: building linkable stage interfaces from naga IR modules
//
// # Concurrency
//
// All operations are single-threaded and run to completion on the calling
// goroutine. Calls operate on caller-owned buffers and stage objects;
// callers must serialize concurrent linking of the same stage pair.
package pipecore

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
