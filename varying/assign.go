// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

import (
	"math/bits"
	"sort"
)

// AssignIOLocations hands out dense driver locations to every variable of
// the given mode, in ascending slot order, and returns the number of
// storage slots used. Component-packed variables sharing a slot receive
// the same driver location; compact scalar arrays are sized by their
// component span and keep other variables out of their partial tail slot.
func AssignIOLocations(shader *Shader, mode Mode) int {
	vars := make([]*Variable, 0, len(shader.Variables))
	for _, v := range shader.Variables {
		if v.Mode == mode {
			vars = append(vars, v)
		}
	}
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].Location < vars[j].Location
	})

	location := 0
	var assignedLocations [SlotMax]int
	var processedLocs [2]uint64

	lastPartial := false
	for _, v := range vars {
		t := varyingType(v, shader.Stage)

		var base int
		switch {
		case v.Mode == ModeInput && shader.Stage == StageVertex:
			base = vertAttribGeneric0
		case v.Mode == ModeOutput && shader.Stage == StageFragment:
			base = fragResultData0
		default:
			base = SlotVar0
		}

		var varSize int
		if v.Compact {
			// An in-progress partial slot cannot take another compact
			// array that starts at component 0.
			if lastPartial && v.Component == 0 {
				location++
			}

			// Compact variables are arrays of scalars packed by component.
			start := 4*location + int(v.Component)
			end := start + int(t.ArrayLen)
			varSize = end/4 - location
			lastPartial = end%4 != 0
		} else {
			// Compact variables bypass the varying compaction pass, so a
			// partially filled compact slot is never shared with a normal
			// variable.
			if lastPartial {
				location++
				lastPartial = false
			}
			varSize = t.SlotCount()
		}

		// Builtins don't allow component packing, so only user varyings
		// can share a location.
		processed := false
		if v.Location >= base {
			loc := v.Location - base
			for i := 0; i < varSize; i++ {
				if processedLocs[v.Index]&(uint64(1)<<(loc+i)) != 0 {
					processed = true
				} else {
					processedLocs[v.Index] |= uint64(1) << (loc + i)
				}
			}
		}

		if processed {
			driverLocation := assignedLocations[v.Location]
			v.DriverLocation = driverLocation

			// A packed array may extend past every variable already
			// processed in its starting slot; allocate the remaining
			// elements consecutively.
			lastSlotLocation := driverLocation + varSize
			if lastSlotLocation > location {
				firstUnallocated := varSize - (lastSlotLocation - location)
				for i := firstUnallocated; i < varSize; i++ {
					assignedLocations[v.Location+i] = location
					location++
				}
			}
			continue
		}

		for i := 0; i < varSize; i++ {
			assignedLocations[v.Location+i] = location + i
		}
		v.DriverLocation = location
		location += varSize
	}

	if lastPartial {
		location++
	}
	return location
}

// linkedVariableLocation maps a varying slot into the linked index space.
// Patch varyings reserve indices 0 to 3 for the tessellation levels and
// bounding box builtins, with generic patch varyings following.
func linkedVariableLocation(location int, patch bool) int {
	if !patch {
		return location
	}
	switch {
	case location >= SlotPatch0:
		return location - SlotPatch0 + 4
	case location >= SlotTessLevelOuter && location <= SlotBoundingBox1:
		return location - SlotTessLevelOuter
	default:
		panic("varying: unsupported patch variable location")
	}
}

// linkedVariableIOMask returns the linked-slot footprint of a variable,
// anchored at bit zero.
func linkedVariableIOMask(v *Variable, stage Stage) uint64 {
	t := varyingType(v, stage)
	slots := t.SlotCount()
	if v.Compact {
		componentCount := int(v.Component) + int(t.ArrayLen)
		slots = (componentCount + 3) / 4
	}
	return bitRange64(0, slots)
}

// LinkedIOInfo reports the linked interface sizes computed by
// AssignLinkedIOLocations.
type LinkedIOInfo struct {
	NumLinkedIOVars      int
	NumLinkedPatchIOVars int
}

// AssignLinkedIOLocations assigns matching driver locations to the
// producer's outputs and the consumer's inputs from the union of both
// interfaces, so a slot written by one side and read by the other lands
// at the same index even when only one side declares it. Driver locations
// are in scalar units, four per slot.
func AssignLinkedIOLocations(producer, consumer *Shader) LinkedIOInfo {
	var outputMask, patchOutputMask uint64

	for _, v := range producer.Variables {
		if v.Mode != ModeOutput {
			continue
		}
		mask := linkedVariableIOMask(v, producer.Stage)
		loc := linkedVariableLocation(v.Location, v.Patch)
		if v.Patch {
			patchOutputMask |= mask << loc
		} else {
			outputMask |= mask << loc
		}
	}

	var inputMask, patchInputMask uint64

	for _, v := range consumer.Variables {
		if v.Mode != ModeInput {
			continue
		}
		mask := linkedVariableIOMask(v, consumer.Stage)
		loc := linkedVariableLocation(v.Location, v.Patch)
		if v.Patch {
			patchInputMask |= mask << loc
		} else {
			inputMask |= mask << loc
		}
	}

	ioMask := outputMask | inputMask
	patchIOMask := patchOutputMask | patchInputMask

	assign := func(shader *Shader, mode Mode) {
		for _, v := range shader.Variables {
			if v.Mode != mode {
				continue
			}
			loc := linkedVariableLocation(v.Location, v.Patch)
			mask := ioMask
			if v.Patch {
				mask = patchIOMask
			}
			v.DriverLocation = bits.OnesCount64(mask&bitRange64(0, loc)) * 4
		}
	}
	assign(producer, ModeOutput)
	assign(consumer, ModeInput)

	return LinkedIOInfo{
		NumLinkedIOVars:      bits.OnesCount64(ioMask),
		NumLinkedPatchIOVars: bits.OnesCount64(patchIOMask),
	}
}
