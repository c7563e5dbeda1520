// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nagalink

import (
	"errors"
	"testing"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/pipecore/varying"
)

func loc(location uint32) *ir.Binding {
	b := ir.Binding(ir.LocationBinding{Location: location})
	return &b
}

func locInterp(location uint32, kind ir.InterpolationKind, sampling ir.InterpolationSampling) *ir.Binding {
	b := ir.Binding(ir.LocationBinding{
		Location:      location,
		Interpolation: &ir.Interpolation{Kind: kind, Sampling: sampling},
	})
	return &b
}

func builtin(v ir.BuiltinValue) *ir.Binding {
	b := ir.Binding(ir.BuiltinBinding{Builtin: v})
	return &b
}

// testModule builds a vertex stage writing position plus two varyings,
// and a fragment stage reading only the first varying.
func testModule() *ir.Module {
	f32 := ir.Type{Name: "f32", Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}
	vsOut := ir.Type{Name: "VsOut", Inner: ir.StructType{
		Members: []ir.StructMember{
			{Name: "pos", Type: 0, Binding: builtin(ir.BuiltinPosition)},
			{Name: "a", Type: 0, Binding: loc(0)},
			{Name: "b", Type: 0, Binding: loc(1)},
		},
	}}

	vs := ir.Function{
		Name:   "vs_main",
		Result: &ir.FunctionResult{Type: 1},
	}
	fs := ir.Function{
		Name: "fs_main",
		Arguments: []ir.FunctionArgument{
			{Name: "a", Type: 0, Binding: loc(0)},
			{Name: "b", Type: 0, Binding: loc(1)},
		},
		Result: &ir.FunctionResult{Type: 0, Binding: loc(0)},
		Expressions: []ir.Expression{
			{Kind: ir.ExprFunctionArgument{Index: 0}},
		},
	}

	return &ir.Module{
		Types: []ir.Type{f32, vsOut},
		EntryPoints: []ir.EntryPoint{
			{Name: "vs", Stage: ir.StageVertex, Function: vs},
			{Name: "fs", Stage: ir.StageFragment, Function: fs},
		},
	}
}

func TestShaderInterfaceVertex(t *testing.T) {
	sh, err := ShaderInterface(testModule(), "vs")
	if err != nil {
		t.Fatalf("ShaderInterface() error = %v", err)
	}
	if sh.Stage != varying.StageVertex {
		t.Errorf("stage = %v, want vertex", sh.Stage)
	}
	if len(sh.Variables) != 3 {
		t.Fatalf("got %d variables, want 3 (position + 2 varyings)", len(sh.Variables))
	}

	pos := sh.Variables[0]
	if pos.Location != 0 || pos.Mode != varying.ModeOutput {
		t.Errorf("position at %d mode %v, want builtin slot 0 output", pos.Location, pos.Mode)
	}
	a, b := sh.Variables[1], sh.Variables[2]
	if a.Location != varying.SlotVar0 || b.Location != varying.SlotVar0+1 {
		t.Errorf("varying slots = %d, %d, want %d, %d",
			a.Location, b.Location, varying.SlotVar0, varying.SlotVar0+1)
	}

	wantMask := uint64(1)<<0 | uint64(1)<<varying.SlotVar0 | uint64(1)<<(varying.SlotVar0+1)
	if sh.OutputsWritten != wantMask {
		t.Errorf("OutputsWritten = %#x, want %#x", sh.OutputsWritten, wantMask)
	}
}

func TestShaderInterfaceFragment(t *testing.T) {
	sh, err := ShaderInterface(testModule(), "fs")
	if err != nil {
		t.Fatalf("ShaderInterface() error = %v", err)
	}
	if sh.Stage != varying.StageFragment {
		t.Errorf("stage = %v, want fragment", sh.Stage)
	}

	var loads int
	for _, a := range sh.Accesses {
		if a.Kind == varying.AccessLoad {
			loads++
			if a.Var.Name != "a" {
				t.Errorf("load of %q, want only the referenced argument", a.Var.Name)
			}
		}
	}
	if loads != 1 {
		t.Errorf("got %d input loads, want 1", loads)
	}
}

func TestShaderInterfaceErrors(t *testing.T) {
	m := testModule()
	if _, err := ShaderInterface(m, "missing"); !errors.Is(err, ErrNoEntryPoint) {
		t.Errorf("missing entry error = %v, want ErrNoEntryPoint", err)
	}

	m.EntryPoints = append(m.EntryPoints, ir.EntryPoint{Name: "cs", Stage: ir.StageCompute})
	if _, err := ShaderInterface(m, "cs"); !errors.Is(err, ErrUnsupportedStage) {
		t.Errorf("compute entry error = %v, want ErrUnsupportedStage", err)
	}
}

func TestShaderInterfaceInterpolation(t *testing.T) {
	m := testModule()
	m.EntryPoints[1].Function.Arguments[0].Binding = locInterp(0, ir.InterpolationFlat, ir.SamplingCentroid)

	sh, err := ShaderInterface(m, "fs")
	if err != nil {
		t.Fatalf("ShaderInterface() error = %v", err)
	}
	v := sh.Variables[0]
	if v.Interp != varying.InterpFlat {
		t.Errorf("interp = %v, want flat", v.Interp)
	}
	if !v.Centroid || v.Sample {
		t.Errorf("sampling: centroid=%v sample=%v, want centroid only", v.Centroid, v.Sample)
	}
}

func TestLinkStagesRemovesUnread(t *testing.T) {
	producer, consumer, err := LinkStages(testModule(), "vs", "fs")
	if err != nil {
		t.Fatalf("LinkStages() error = %v", err)
	}

	// "b" is declared but never referenced by the fragment body.
	for _, v := range producer.Variables {
		switch v.Name {
		case "a":
			if v.Mode != varying.ModeOutput {
				t.Error("read varying was demoted")
			}
			if v.Location != varying.SlotVar0 || v.Component != 0 {
				t.Errorf("a compacted to %d.%d, want %d.0", v.Location, v.Component, varying.SlotVar0)
			}
		case "b":
			if v.Mode != varying.ModeTemp {
				t.Error("unread varying was not demoted")
			}
		}
	}
	for _, v := range consumer.Variables {
		if v.Name == "b" && v.Mode != varying.ModeTemp {
			t.Error("unreferenced input was not demoted")
		}
	}
}
