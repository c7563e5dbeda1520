// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

import "testing"

// linkedPair builds a producer/consumer pair with matching scalar
// varyings at the given locations, consumer loads included.
func linkedPair(locs ...int) (*Shader, *Shader) {
	producer := &Shader{Stage: StageVertex}
	consumer := &Shader{Stage: StageFragment}
	for _, loc := range locs {
		out := outVar("v", loc)
		in := inVar("v", loc)
		producer.Variables = append(producer.Variables, out)
		producer.OutputsWritten |= 1 << loc
		consumer.Variables = append(consumer.Variables, in)
		consumer.InputsRead |= 1 << loc
		consumer.Accesses = append(consumer.Accesses, Access{Var: in, Kind: AccessLoad})
	}
	return producer, consumer
}

func TestCompactVaryingsPacksScalars(t *testing.T) {
	producer, consumer := linkedPair(SlotVar0, SlotVar0+3, SlotVar0+5)

	CompactVaryings(producer, consumer, true)

	for i, v := range producer.Variables {
		if v.Location != SlotVar0 {
			t.Errorf("output %d location = %d, want %d", i, v.Location, SlotVar0)
		}
		if v.Component != uint8(i) {
			t.Errorf("output %d component = %d, want %d", i, v.Component, i)
		}
	}
	for i, v := range consumer.Variables {
		if v.Location != SlotVar0 || v.Component != uint8(i) {
			t.Errorf("input %d at %d.%d, want %d.%d", i, v.Location, v.Component, SlotVar0, i)
		}
	}

	if producer.OutputsWritten != 1<<SlotVar0 {
		t.Errorf("OutputsWritten = %#x, want %#x", producer.OutputsWritten, uint64(1)<<SlotVar0)
	}
	if consumer.InputsRead != 1<<SlotVar0 {
		t.Errorf("InputsRead = %#x, want %#x", consumer.InputsRead, uint64(1)<<SlotVar0)
	}
}

func TestCompactVaryingsIdempotent(t *testing.T) {
	producer, consumer := linkedPair(SlotVar0+1, SlotVar0+7, SlotVar0+9)

	CompactVaryings(producer, consumer, true)

	type state struct {
		loc  int
		comp uint8
	}
	var want []state
	for _, v := range producer.Variables {
		want = append(want, state{v.Location, v.Component})
	}

	CompactVaryings(producer, consumer, true)

	for i, v := range producer.Variables {
		if v.Location != want[i].loc || v.Component != want[i].comp {
			t.Errorf("output %d moved on second pass: %d.%d, want %d.%d",
				i, v.Location, v.Component, want[i].loc, want[i].comp)
		}
	}
}

func TestCompactVaryingsInterpolationGrouping(t *testing.T) {
	producer, consumer := linkedPair(SlotVar0, SlotVar0+1)

	// Make the second pair flat by type.
	producer.Variables[1].Type.Integer = true
	consumer.Variables[1].Type.Integer = true

	CompactVaryings(producer, consumer, true)

	smooth := producer.Variables[0]
	flat := producer.Variables[1]
	if smooth.Location == flat.Location {
		t.Errorf("smooth and flat varyings share slot %d", smooth.Location)
	}
	if smooth.Component != 0 || flat.Component != 0 {
		t.Errorf("components = %d, %d, want 0, 0", smooth.Component, flat.Component)
	}
}

func TestCompactVaryingsSampleLocGrouping(t *testing.T) {
	producer, consumer := linkedPair(SlotVar0, SlotVar0+1)

	producer.Variables[1].Centroid = true
	consumer.Variables[1].Centroid = true

	CompactVaryings(producer, consumer, true)

	if producer.Variables[0].Location == producer.Variables[1].Location {
		t.Error("center and centroid varyings share a slot")
	}
}

func TestCompactVaryingsPinsComplexTypes(t *testing.T) {
	producer, consumer := linkedPair(SlotVar0 + 2)

	// An unmoveable vec4 occupies all of the first slot.
	vec := &Variable{Name: "big", Mode: ModeOutput, Location: SlotVar0,
		Type: Type{Kind: TypeVector, Bits: 32, Elems: 4}}
	producer.Variables = append(producer.Variables, vec)
	producer.OutputsWritten |= 1 << SlotVar0
	vecIn := &Variable{Name: "big", Mode: ModeInput, Location: SlotVar0,
		Type: Type{Kind: TypeVector, Bits: 32, Elems: 4}}
	consumer.Variables = append(consumer.Variables, vecIn)
	consumer.InputsRead |= 1 << SlotVar0
	consumer.Accesses = append(consumer.Accesses, Access{Var: vecIn, Kind: AccessLoad})

	CompactVaryings(producer, consumer, true)

	if vec.Location != SlotVar0 || vec.Component != 0 {
		t.Errorf("vec4 moved to %d.%d, want pinned at %d.0", vec.Location, vec.Component, SlotVar0)
	}
	scalar := producer.Variables[0]
	if scalar.Location != SlotVar0+1 {
		t.Errorf("scalar packed to %d, want %d", scalar.Location, SlotVar0+1)
	}
	wantMask := uint64(1)<<SlotVar0 | uint64(1)<<(SlotVar0+1)
	if producer.OutputsWritten != wantMask {
		t.Errorf("OutputsWritten = %#x, want %#x", producer.OutputsWritten, wantMask)
	}
}

func TestCompactVaryingsPatchRange(t *testing.T) {
	producer := &Shader{Stage: StageTessCtrl}
	consumer := &Shader{Stage: StageTessEval}

	out := &Variable{Name: "p", Mode: ModeOutput, Location: SlotPatch0 + 3, Patch: true, Type: scalar32()}
	in := &Variable{Name: "p", Mode: ModeInput, Location: SlotPatch0 + 3, Patch: true, Type: scalar32()}
	producer.Variables = []*Variable{out}
	producer.PatchOutputsWritten = 1 << 3
	consumer.Variables = []*Variable{in}
	consumer.PatchInputsRead = 1 << 3
	consumer.Accesses = []Access{{Var: in, Kind: AccessLoad}}

	CompactVaryings(producer, consumer, false)

	if out.Location != SlotPatch0 || out.Component != 0 {
		t.Errorf("patch output at %d.%d, want %d.0", out.Location, out.Component, SlotPatch0)
	}
	if in.Location != SlotPatch0 {
		t.Errorf("patch input at %d, want %d", in.Location, SlotPatch0)
	}
	if producer.PatchOutputsWritten != 1 {
		t.Errorf("PatchOutputsWritten = %#x, want 1", producer.PatchOutputsWritten)
	}
	if consumer.PatchInputsRead != 1 {
		t.Errorf("PatchInputsRead = %#x, want 1", consumer.PatchInputsRead)
	}
}

// An always-active array keeps its full slot footprint in the rewritten
// masks even when the compactor cannot touch it.
func TestRemapKeepsAlwaysActiveMask(t *testing.T) {
	arr := &Variable{Name: "xfb", Mode: ModeOutput, Location: SlotVar0,
		AlwaysActive: true,
		Type:         Type{Kind: TypeScalar, Bits: 32, Elems: 1, ArrayLen: 3}}
	producer := &Shader{
		Stage:          StageVertex,
		Variables:      []*Variable{arr},
		OutputsWritten: 0b111 << SlotVar0,
	}

	arrIn := &Variable{Name: "xfb", Mode: ModeInput, Location: SlotVar0,
		AlwaysActive: true,
		Type:         Type{Kind: TypeScalar, Bits: 32, Elems: 1, ArrayLen: 3}}
	consumer := &Shader{
		Stage:      StageFragment,
		Variables:  []*Variable{arrIn},
		InputsRead: 0b111 << SlotVar0,
		Accesses:   []Access{{Var: arrIn, Kind: AccessLoad}},
	}

	CompactVaryings(producer, consumer, true)

	if producer.OutputsWritten != 0b111<<SlotVar0 {
		t.Errorf("OutputsWritten = %#x, want %#x", producer.OutputsWritten, uint64(0b111)<<SlotVar0)
	}
	if arr.Location != SlotVar0 {
		t.Errorf("always-active array moved to %d", arr.Location)
	}
}

// A TCS reading an output slot the gather never registered abandons
// packing and leaves locations alone.
func TestCompactVaryingsAbandonsOnMismatch(t *testing.T) {
	out := outVar("a", SlotVar0+2)
	stray := &Variable{Name: "stray", Mode: ModeOutput, Location: SlotVar0 + 9,
		Type: Type{Kind: TypeVector, Bits: 32, Elems: 2}}
	producer := &Shader{
		Stage:               StageTessCtrl,
		Variables:           []*Variable{out, stray},
		OutputsWritten:      1<<(SlotVar0+2) | 1<<(SlotVar0+9),
		PatchOutputsWritten: 0,
		Accesses:            []Access{{Var: stray, Kind: AccessLoad}},
	}

	in := inVar("a", SlotVar0+2)
	consumer := &Shader{
		Stage:      StageTessEval,
		Variables:  []*Variable{in},
		InputsRead: 1 << (SlotVar0 + 2),
		Accesses:   []Access{{Var: in, Kind: AccessLoad}},
	}

	CompactVaryings(producer, consumer, false)

	if out.Location != SlotVar0+2 {
		t.Errorf("output moved to %d after abandoned packing, want %d", out.Location, SlotVar0+2)
	}
	if in.Location != SlotVar0+2 {
		t.Errorf("input moved to %d after abandoned packing, want %d", in.Location, SlotVar0+2)
	}
}
