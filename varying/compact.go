// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

import (
	"sort"

	"github.com/gogpu/pipecore"
)

// interpType returns the effective interpolation grouping key of a
// varying: integers are always flat, an explicit qualifier wins, and the
// default is smooth or none depending on the API profile.
func interpType(v *Variable, t Type, defaultToSmooth bool) InterpMode {
	switch {
	case t.Integer:
		return InterpFlat
	case v.Interp != InterpNone:
		return v.Interp
	case defaultToSmooth:
		return InterpSmooth
	default:
		return InterpNone
	}
}

// packable reports whether a varying of this type may be repacked.
// Arrays, matrices, structs, and non-32-bit scalars are left in place;
// vectors are expected to have been scalarized before linking.
func packable(t Type) bool {
	return t.IsScalar() && t.Is32Bit()
}

// assignedComps tracks the occupied components of one slot along with
// the qualifiers everything packed into it must share.
type assignedComps struct {
	comps      uint8
	interpType InterpMode
	interpLoc  InterpLoc
	is32Bit    bool
}

// getUnmoveableComponentsMasks pins the components of varyings that
// cannot be repacked (arrays, matrices, structs, 64-bit and explicitly
// packed types) at their current locations so the compactor packs around
// them.
func getUnmoveableComponentsMasks(shader *Shader, mode Mode, comps *[MaxVaryingsInclPatch]assignedComps, defaultToSmooth bool) {
	for _, v := range shader.Variables {
		if v.Mode != mode {
			continue
		}
		if v.Location < SlotVar0 || v.Location-SlotVar0 >= MaxVaryingsInclPatch {
			continue
		}

		t := varyingType(v, shader.Stage)
		if packable(t) {
			continue
		}

		location := v.Location - SlotVar0

		elements := 4
		if e := t.WithoutArray(); e.Kind == TypeScalar || e.Kind == TypeVector {
			elements = int(e.Elems)
		}

		elem := t.WithoutArray()
		dualSlot := elem.IsDualSlot()
		slots := t.SlotCount()
		dmul := 1
		if elem.Bits == 64 {
			dmul = 2
		}

		// Dual-slot doubles straddle two locations; enhanced-layouts
		// packing rules put the overflow components at the start of the
		// second slot.
		compsSlot2 := 0
		for i := 0; i < slots && location+i < MaxVaryingsInclPatch; i++ {
			if dualSlot {
				if i&1 != 0 {
					comps[location+i].comps |= uint8(1)<<compsSlot2 - 1
				} else {
					numComps := 4 - int(v.Component)
					compsSlot2 = elements*dmul - numComps
					comps[location+i].comps |= (uint8(1)<<numComps - 1) << v.Component
				}
			} else {
				comps[location+i].comps |= (uint8(1)<<(elements*dmul) - 1) << v.Component
			}

			comps[location+i].interpType = interpType(v, t, defaultToSmooth)
			comps[location+i].interpLoc = v.interpLoc()
			comps[location+i].is32Bit = elem.Is32Bit()
		}
	}
}

// varyingLoc is a remap target. A zero location means "no remap": real
// remapped locations are always at least SlotVar0.
type varyingLoc struct {
	component uint8
	location  int
}

func markAllUsedSlots(v *Variable, slotsUsed *[2]uint64, usedMask uint64, numSlots int) {
	locOffset := 0
	idx := 0
	if v.Patch {
		locOffset = SlotPatch0
		idx = 1
	}
	slotsUsed[idx] |= usedMask & bitRange64(v.Location-locOffset, numSlots)
}

func markUsedSlot(v *Variable, slotsUsed *[2]uint64, offset int) {
	locOffset := 0
	idx := 0
	if v.Patch {
		locOffset = SlotPatch0
		idx = 1
	}
	slotsUsed[idx] |= uint64(1) << (v.Location - locOffset + offset)
}

// remapSlotsAndComponents applies a remap table to every variable of the
// given mode and recomputes the stage's aggregate slot masks from the new
// locations. Built-in bits in slotsUsed pass through untouched.
func remapSlotsAndComponents(shader *Shader, mode Mode, remap *[MaxVaryingsInclPatch][4]varyingLoc,
	slotsUsed *uint64, outSlotsRead *uint64, pSlotsUsed *uint32, pOutSlotsRead *uint32) {

	var outSlotsReadTmp, slotsUsedTmp [2]uint64

	// Builtins are never remapped; carry their bits over unchanged.
	slotsUsedTmp[0] = *slotsUsed & bitRange64(0, SlotVar0)

	for _, v := range shader.Variables {
		if v.Mode != mode {
			continue
		}
		if v.Location < SlotVar0 || v.Location-SlotVar0 >= MaxVaryingsInclPatch {
			continue
		}

		t := varyingType(v, shader.Stage)
		numSlots := t.SlotCount()

		location := v.Location - SlotVar0
		newLoc := &remap[location][v.Component]

		locOffset := 0
		used := *slotsUsed
		outsUsed := *outSlotsRead
		if v.Patch {
			locOffset = SlotPatch0
			used = uint64(*pSlotsUsed)
			outsUsed = uint64(*pOutSlotsRead)
		}
		slots := bitRange64(v.Location-locOffset, numSlots)

		usedAcrossStages := slots&used != 0
		outputsRead := slots&outsUsed != 0

		if newLoc.location != 0 {
			v.Location = newLoc.location
			v.Component = newLoc.component
		}

		if v.AlwaysActive {
			// Link-time splitting never applies to these, so copy the
			// existing mask wholesale to keep partially-marked arrays
			// intact.
			if usedAcrossStages {
				markAllUsedSlots(v, &slotsUsedTmp, used, numSlots)
			}
			if outputsRead {
				markAllUsedSlots(v, &outSlotsReadTmp, outsUsed, numSlots)
			}
		} else {
			for i := 0; i < numSlots; i++ {
				if usedAcrossStages {
					markUsedSlot(v, &slotsUsedTmp, i)
				}
				if outputsRead {
					markUsedSlot(v, &outSlotsReadTmp, i)
				}
			}
		}
	}

	*slotsUsed = slotsUsedTmp[0]
	*outSlotsRead = outSlotsReadTmp[0]
	*pSlotsUsed = uint32(slotsUsedTmp[1])
	*pOutSlotsRead = uint32(outSlotsReadTmp[1])
}

// varyingComponent is one packable producer output component plus the
// consumer-side qualifiers that constrain where it may land.
type varyingComponent struct {
	v                *Variable // producer output
	interpType       InterpMode
	interpLoc        InterpLoc
	is32Bit          bool
	isPatch          bool
	isIntraStageOnly bool
	initialised      bool
}

// gatherVaryingComponentInfo collects the packable producer output
// components and fills in their interpolation info from the consumer's
// reads (or, for tessellation control, the producer's own output reads).
// A mismatch between the two interfaces abandons packing and returns nil.
func gatherVaryingComponentInfo(producer, consumer *Shader, defaultToSmooth bool) []varyingComponent {
	var storeIdx [MaxVaryingsInclPatch][4]int
	n := 0

	for _, v := range producer.Variables {
		if v.Mode != ModeOutput {
			continue
		}
		if v.Location < SlotVar0 || v.Location-SlotVar0 >= MaxVaryingsInclPatch {
			continue
		}
		// Transform feedback varyings keep their slots.
		if v.AlwaysActive {
			continue
		}
		if !packable(varyingType(v, producer.Stage)) {
			continue
		}
		n++
		storeIdx[v.Location-SlotVar0][v.Component] = n
	}

	infos := make([]varyingComponent, n)

	for _, a := range consumer.Accesses {
		if a.Kind != AccessLoad || a.Var.Mode != ModeInput {
			continue
		}
		in := a.Var
		if in.Location < SlotVar0 || in.Location-SlotVar0 >= MaxVaryingsInclPatch {
			continue
		}

		idx := storeIdx[in.Location-SlotVar0][in.Component]
		if idx == 0 {
			continue
		}
		info := &infos[idx-1]
		if info.initialised {
			continue
		}

		t := varyingType(in, consumer.Stage)
		info.v = in
		info.interpType = interpType(in, t, defaultToSmooth)
		info.interpLoc = in.interpLoc()
		info.is32Bit = t.Is32Bit()
		info.isPatch = in.Patch
		info.isIntraStageOnly = false
		info.initialised = true
	}

	// TCS invocations read each other's outputs; those components must be
	// packed even when the evaluation stage never consumes them.
	if producer.Stage == StageTessCtrl {
		for _, a := range producer.Accesses {
			if a.Kind != AccessLoad || a.Var.Mode != ModeOutput {
				continue
			}
			out := a.Var
			if out.Location < SlotVar0 || out.Location-SlotVar0 >= MaxVaryingsInclPatch {
				continue
			}

			idx := storeIdx[out.Location-SlotVar0][out.Component]
			if idx == 0 {
				// The interfaces didn't line up, e.g. scalar inputs
				// against struct member outputs. Abandon packing.
				pipecore.Logger().Warn("varying: stage interfaces mismatch, packing abandoned",
					"producer", out.Name, "location", out.Location)
				return nil
			}
			info := &infos[idx-1]
			if info.initialised {
				continue
			}

			t := varyingType(out, producer.Stage)
			info.v = out
			info.interpType = interpType(out, t, defaultToSmooth)
			info.interpLoc = out.interpLoc()
			info.is32Bit = t.Is32Bit()
			info.isPatch = out.Patch
			info.isIntraStageOnly = true
			info.initialised = true
		}
	}

	for i := range infos {
		if !infos[i].initialised {
			pipecore.Logger().Warn("varying: stage interfaces mismatch, packing abandoned",
				"index", i)
			return nil
		}
	}
	return infos
}

// sortVaryingComponents orders components so the greedy cursor packs
// compatible ones contiguously: patches at the end, intra-stage-only
// reads after cross-stage ones, then by interpolation type and sample
// location, finally by original position for determinism.
func sortVaryingComponents(infos []varyingComponent) {
	sort.Slice(infos, func(i, j int) bool {
		a, b := &infos[i], &infos[j]
		if a.isPatch != b.isPatch {
			return !a.isPatch
		}
		if a.isIntraStageOnly != b.isIntraStageOnly {
			return !a.isIntraStageOnly
		}
		if a.interpType != b.interpType {
			return a.interpType < b.interpType
		}
		if a.interpLoc != b.interpLoc {
			return a.interpLoc < b.interpLoc
		}
		if a.v.Location != b.v.Location {
			return a.v.Location < b.v.Location
		}
		return a.v.Component < b.v.Component
	})
}

// assignRemapLocations finds the first slot at or after the cursor that
// can take info's component and records the mapping. Slots holding
// components with different interpolation qualifiers or widths are
// skipped whole. On exhaustion the cursor is left at maxLocation and no
// mapping is recorded.
func assignRemapLocations(remap *[MaxVaryingsInclPatch][4]varyingLoc,
	assigned *[MaxVaryingsInclPatch]assignedComps, info *varyingComponent,
	cursor, comp *int, maxLocation int) {

	tmpCursor := *cursor
	tmpComp := *comp

	for ; tmpCursor < maxLocation; tmpCursor++ {
		if assigned[tmpCursor].comps != 0 {
			if assigned[tmpCursor].interpType != info.interpType ||
				assigned[tmpCursor].interpLoc != info.interpLoc {
				tmpComp = 0
				continue
			}
			if !assigned[tmpCursor].is32Bit {
				tmpComp = 0
				continue
			}
			for tmpComp < 4 && assigned[tmpCursor].comps&(1<<tmpComp) != 0 {
				tmpComp++
			}
		}

		if tmpComp == 4 {
			tmpComp = 0
			continue
		}

		location := info.v.Location - SlotVar0

		assigned[tmpCursor].comps |= 1 << tmpComp
		assigned[tmpCursor].interpType = info.interpType
		assigned[tmpCursor].interpLoc = info.interpLoc
		assigned[tmpCursor].is32Bit = info.is32Bit

		remap[location][info.v.Component] = varyingLoc{
			component: uint8(tmpComp),
			location:  tmpCursor + SlotVar0,
		}
		tmpComp++
		break
	}

	*cursor = tmpCursor
	*comp = tmpComp
}

// compactComponents packs the movable components of the producer/consumer
// pair into the slots left open by the unmoveable ones, then rewrites
// both stages' variables and aggregate masks.
func compactComponents(producer, consumer *Shader, assigned *[MaxVaryingsInclPatch]assignedComps, defaultToSmooth bool) {
	var remap [MaxVaryingsInclPatch][4]varyingLoc

	infos := gatherVaryingComponentInfo(producer, consumer, defaultToSmooth)
	sortVaryingComponents(infos)

	cursor := 0
	comp := 0

	for i := range infos {
		info := &infos[i]

		if info.isPatch {
			// Sorting put all patch components at the tail; jump the
			// cursor into the patch range on the first one.
			if cursor < MaxVarying {
				cursor = MaxVarying
				comp = 0
			}
			assignRemapLocations(&remap, assigned, info, &cursor, &comp, MaxVaryingsInclPatch)
		} else {
			assignRemapLocations(&remap, assigned, info, &cursor, &comp, MaxVarying)

			// Mismatching unmoveable components can make the cursor skip
			// slots that later components could still use. Retry once
			// from the start; in practice this is rare.
			if cursor == MaxVarying {
				cursor = 0
				comp = 0
				assignRemapLocations(&remap, assigned, info, &cursor, &comp, MaxVarying)
			}
		}
	}

	var zero64 uint64
	var zero32 uint32
	remapSlotsAndComponents(consumer, ModeInput, &remap,
		&consumer.InputsRead, &zero64,
		&consumer.PatchInputsRead, &zero32)
	remapSlotsAndComponents(producer, ModeOutput, &remap,
		&producer.OutputsWritten, &producer.OutputsRead,
		&producer.PatchOutputsWritten, &producer.PatchOutputsRead)
}

// CompactVaryings repacks scalar 32-bit varyings between producer and
// consumer into the fewest interpolant slots. It assumes unused varyings
// were removed first, so the union of both stages' masks is the live set.
// The producer must not be a fragment shader and the consumer must not be
// a vertex shader.
//
// defaultToSmooth selects the interpolation mode assumed for varyings
// without an explicit qualifier, matching compatibility-profile defaults.
func CompactVaryings(producer, consumer *Shader, defaultToSmooth bool) {
	if producer.Stage == StageFragment || consumer.Stage == StageVertex {
		panic("varying: CompactVaryings stage order is producer then consumer")
	}

	var assigned [MaxVaryingsInclPatch]assignedComps

	getUnmoveableComponentsMasks(producer, ModeOutput, &assigned, defaultToSmooth)
	getUnmoveableComponentsMasks(consumer, ModeInput, &assigned, defaultToSmooth)

	compactComponents(producer, consumer, &assigned, defaultToSmooth)
}
