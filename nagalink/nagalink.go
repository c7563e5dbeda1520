// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package nagalink

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/pipecore/varying"
)

// ErrNoEntryPoint is returned when the module has no entry point with
// the requested name.
var ErrNoEntryPoint = errors.New("nagalink: no such entry point")

// ErrUnsupportedStage is returned for entry points outside the raster
// pipeline.
var ErrUnsupportedStage = errors.New("nagalink: unsupported shader stage")

// slotPosition is the builtin varying slot of the clip-space position.
const slotPosition = 0

func stageOf(s ir.ShaderStage) (varying.Stage, error) {
	switch s {
	case ir.StageVertex:
		return varying.StageVertex, nil
	case ir.StageFragment:
		return varying.StageFragment, nil
	default:
		return 0, ErrUnsupportedStage
	}
}

// typeOf flattens an IR type into the shape descriptor the linking
// passes size footprints with.
func typeOf(m *ir.Module, h ir.TypeHandle) varying.Type {
	if int(h) >= len(m.Types) {
		return varying.Type{Kind: varying.TypeScalar, Bits: 32, Elems: 1}
	}
	return typeOfInner(m, m.Types[h].Inner)
}

func typeOfInner(m *ir.Module, inner ir.TypeInner) varying.Type {
	switch t := inner.(type) {
	case ir.ScalarType:
		return varying.Type{
			Kind:    varying.TypeScalar,
			Bits:    t.Width * 8,
			Elems:   1,
			Integer: t.Kind != ir.ScalarFloat,
		}
	case ir.VectorType:
		return varying.Type{
			Kind:    varying.TypeVector,
			Bits:    t.Scalar.Width * 8,
			Elems:   uint8(t.Size),
			Integer: t.Scalar.Kind != ir.ScalarFloat,
		}
	case ir.MatrixType:
		return varying.Type{
			Kind:  varying.TypeMatrix,
			Bits:  t.Scalar.Width * 8,
			Elems: uint8(t.Rows),
			Cols:  uint8(t.Columns),
		}
	case ir.ArrayType:
		elem := typeOf(m, t.Base)
		if t.Size.Constant != nil {
			elem.ArrayLen = uint16(*t.Size.Constant)
		}
		return elem
	case ir.StructType:
		return varying.Type{Kind: varying.TypeStruct, Bits: 32, Elems: 4}
	default:
		return varying.Type{Kind: varying.TypeScalar, Bits: 32, Elems: 1}
	}
}

// applyBinding fills in the location and interpolation qualifiers of v
// from an IR binding. Builtin-bound variables become system values on
// the input side; on the output side only the position builtin occupies
// a varying slot.
func applyBinding(v *varying.Variable, b ir.Binding, output bool) {
	switch bind := b.(type) {
	case ir.LocationBinding:
		v.Location = varying.SlotVar0 + int(bind.Location)
		if bind.Interpolation != nil {
			switch bind.Interpolation.Kind {
			case ir.InterpolationFlat:
				v.Interp = varying.InterpFlat
			case ir.InterpolationLinear:
				v.Interp = varying.InterpNoPerspective
			case ir.InterpolationPerspective:
				v.Interp = varying.InterpSmooth
			}
			switch bind.Interpolation.Sampling {
			case ir.SamplingCentroid:
				v.Centroid = true
			case ir.SamplingSample:
				v.Sample = true
			}
		}
	case ir.BuiltinBinding:
		if output && bind.Builtin == ir.BuiltinPosition {
			v.Location = slotPosition
			return
		}
		if !output {
			v.Mode = varying.ModeSystemValue
		}
		v.Location = varying.LocUnassigned
	}
}

// ShaderInterface builds the linkable interface of the named entry
// point. Inputs come from the entry function's arguments, outputs from
// its result binding (flattened struct members included); an access is
// recorded for every input the function body references, and every
// output is treated as stored.
func ShaderInterface(m *ir.Module, entryPoint string) (*varying.Shader, error) {
	var ep *ir.EntryPoint
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Name == entryPoint {
			ep = &m.EntryPoints[i]
			break
		}
	}
	if ep == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoEntryPoint, entryPoint)
	}
	stage, err := stageOf(ep.Stage)
	if err != nil {
		return nil, fmt.Errorf("%w: entry point %q", err, entryPoint)
	}
	fn := &ep.Function

	sh := &varying.Shader{Stage: stage}

	// One input variable per bound argument; arguments without a binding
	// (opaque resources) don't participate in the stage interface.
	inputs := make([]*varying.Variable, len(fn.Arguments))
	for i := range fn.Arguments {
		arg := &fn.Arguments[i]
		if arg.Binding == nil {
			continue
		}
		v := &varying.Variable{
			Name:     arg.Name,
			Mode:     varying.ModeInput,
			Location: varying.LocUnassigned,
			Type:     typeOf(m, arg.Type),
		}
		applyBinding(v, *arg.Binding, false)
		inputs[i] = v
		sh.Variables = append(sh.Variables, v)
	}

	if fn.Result != nil {
		addOutput := func(name string, h ir.TypeHandle, b ir.Binding) {
			v := &varying.Variable{
				Name:     name,
				Mode:     varying.ModeOutput,
				Location: varying.LocUnassigned,
				Type:     typeOf(m, h),
			}
			applyBinding(v, b, true)
			sh.Variables = append(sh.Variables, v)
			sh.Accesses = append(sh.Accesses, varying.Access{Var: v, Kind: varying.AccessStore})
		}

		if fn.Result.Binding != nil {
			addOutput(fn.Name, fn.Result.Type, *fn.Result.Binding)
		} else if int(fn.Result.Type) < len(m.Types) {
			if st, ok := m.Types[fn.Result.Type].Inner.(ir.StructType); ok {
				for i := range st.Members {
					member := &st.Members[i]
					if member.Binding == nil {
						continue
					}
					addOutput(member.Name, member.Type, *member.Binding)
				}
			}
		}
	}

	// Record which inputs the body actually touches.
	seen := make(map[int]bool)
	for i := range fn.Expressions {
		ref, ok := fn.Expressions[i].Kind.(ir.ExprFunctionArgument)
		if !ok || int(ref.Index) >= len(inputs) {
			continue
		}
		v := inputs[ref.Index]
		if v == nil || seen[int(ref.Index)] {
			continue
		}
		seen[int(ref.Index)] = true
		sh.Accesses = append(sh.Accesses, varying.Access{Var: v, Kind: varying.AccessLoad})
	}

	refreshMasks(sh)
	return sh, nil
}

// refreshMasks recomputes the aggregate slot masks from variable
// locations.
func refreshMasks(sh *varying.Shader) {
	sh.InputsRead = 0
	sh.OutputsWritten = 0
	for _, v := range sh.Variables {
		mask := varying.VariableIOMask(v, sh.Stage)
		switch v.Mode {
		case varying.ModeInput:
			sh.InputsRead |= mask
		case varying.ModeOutput:
			sh.OutputsWritten |= mask
		}
	}
}

// pruneUnreadInputs demotes input variables the stage body never loads,
// so the cross-stage removal pass sees only live inputs. This stands in
// for the dead variable elimination that normally runs before linking.
func pruneUnreadInputs(sh *varying.Shader) {
	loaded := make(map[*varying.Variable]bool)
	for _, a := range sh.Accesses {
		if a.Kind == varying.AccessLoad {
			loaded[a.Var] = true
		}
	}
	for _, v := range sh.Variables {
		if v.Mode == varying.ModeInput && !loaded[v] {
			v.Mode = varying.ModeTemp
			v.Location = 0
		}
	}
}

// LinkStages removes unused varyings between the two entry points'
// interfaces and compacts the survivors, returning both rewritten
// interfaces. The caller applies the resulting locations back to its
// code generation.
func LinkStages(m *ir.Module, producerEntry, consumerEntry string) (producer, consumer *varying.Shader, err error) {
	producer, err = ShaderInterface(m, producerEntry)
	if err != nil {
		return nil, nil, err
	}
	consumer, err = ShaderInterface(m, consumerEntry)
	if err != nil {
		return nil, nil, err
	}

	pruneUnreadInputs(consumer)
	varying.RemoveUnusedVaryings(producer, consumer)
	refreshMasks(producer)
	refreshMasks(consumer)
	varying.CompactVaryings(producer, consumer, false)
	return producer, consumer, nil
}
