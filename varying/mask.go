// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

// bitRange64 returns count consecutive set bits starting at start.
func bitRange64(start, count int) uint64 {
	if count >= 64 {
		return ^uint64(0) << start
	}
	return (uint64(1)<<count - 1) << start
}

// VariableIOMask returns the slot usage mask of one interface variable.
// For patch varyings the bit positions are relative to SlotPatch0,
// otherwise they are absolute locations (built-ins included). Variables
// without an assigned location contribute nothing.
func VariableIOMask(v *Variable, stage Stage) uint64 {
	if v.Location < 0 {
		return 0
	}
	location := v.Location
	if v.Patch {
		if location < SlotPatch0 {
			return 0
		}
		location -= SlotPatch0
	}

	slots := varyingType(v, stage).SlotCount()
	return bitRange64(location, slots)
}
