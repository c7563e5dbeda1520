// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package varying links the I/O interfaces of adjacent shader stages.
//
// A [Shader] is a flat view of one stage: its interface [Variable]s plus
// the variable accesses its body performs. The linking passes mutate
// variables in place — they never create or destroy them:
//
//   - [RemoveUnusedVaryings] demotes outputs the consumer never reads (and
//     inputs the producer never writes) to temporary storage, leaving the
//     actual deletion to a later dead-code pass
//   - [CompactVaryings] repacks scalar 32-bit varyings into the minimum
//     number of 4-component interpolant slots, grouped by compatible
//     interpolation, and rewrites both stages' locations and aggregate
//     slot masks
//   - [AssignIOLocations] and [AssignLinkedIOLocations] hand out dense,
//     deterministic storage indices per stage or per linked pair
//
// Generic varyings occupy slots [SlotVar0, SlotVar0+MaxVarying); built-in
// slots live below SlotVar0 and are never remapped; per-patch varyings
// occupy a separate range starting at SlotPatch0. Callers must serialize
// concurrent linking of the same stage pair: the passes mutate shared
// stage state with no internal locking.
package varying
