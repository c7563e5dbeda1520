// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

// Stage identifies a shader pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageTessCtrl
	StageTessEval
	StageGeometry
	StageFragment
)

// Mode classifies how a variable participates in the stage interface.
type Mode uint8

const (
	ModeInput Mode = iota
	ModeOutput
	ModeSystemValue
	// ModeTemp marks a variable demoted out of the interface; a later
	// dead-code pass reclaims it.
	ModeTemp
)

// InterpMode is the interpolation qualifier of a varying.
type InterpMode uint8

const (
	InterpNone InterpMode = iota
	InterpSmooth
	InterpFlat
	InterpNoPerspective
)

// InterpLoc is the interpolation sample location of a varying. The order
// matters for compaction grouping: sample first, then centroid, then
// center.
type InterpLoc uint8

const (
	InterpLocSample InterpLoc = iota
	InterpLocCentroid
	InterpLocCenter
)

// Slot layout. Built-in varyings occupy locations below SlotVar0 and are
// never remapped; generic varyings occupy MaxVarying slots from SlotVar0;
// per-patch varyings occupy their own range from SlotPatch0.
const (
	MaxVarying           = 32
	MaxPatchVarying      = 32
	MaxVaryingsInclPatch = MaxVarying + MaxPatchVarying

	SlotVar0   = 32
	SlotPatch0 = SlotVar0 + MaxVarying
	SlotMax    = SlotPatch0 + MaxPatchVarying

	// Tessellation builtin slots, mapped into the linked patch index
	// space ahead of the generic patch varyings.
	SlotTessLevelOuter = 24
	SlotTessLevelInner = 25
	SlotBoundingBox0   = 26
	SlotBoundingBox1   = 27

	// LocUnassigned is the sentinel for a variable without a location.
	LocUnassigned = -1
)

// Dense per-stage location bases for stage boundary slots that are not
// varyings.
const (
	vertAttribGeneric0 = 16
	fragResultData0    = 4
)

// TypeKind classifies the shape of a variable's type.
type TypeKind uint8

const (
	TypeScalar TypeKind = iota
	TypeVector
	TypeMatrix
	TypeStruct
)

// Type is the flattened type descriptor of a shader variable: enough
// structure to size its interface footprint without carrying the full
// type system of the IR.
type Type struct {
	Kind     TypeKind
	Bits     uint8  // scalar bit width: 16, 32, or 64
	Elems    uint8  // vector elements; 1 for scalars
	Cols     uint8  // matrix columns; 0 otherwise
	ArrayLen uint16 // outer array length; 0 when not an array
	Integer  bool   // integer scalar kind (forces flat interpolation)
}

// IsArray reports whether the type has an outer array dimension.
func (t Type) IsArray() bool { return t.ArrayLen > 0 }

// WithoutArray strips the outer array dimension.
func (t Type) WithoutArray() Type {
	t.ArrayLen = 0
	return t
}

// IsScalar reports whether the type is a single non-array scalar.
func (t Type) IsScalar() bool { return t.Kind == TypeScalar && t.ArrayLen == 0 }

// Is32Bit reports whether the scalar width is 32 bits.
func (t Type) Is32Bit() bool { return t.Bits == 32 }

// IsDualSlot reports whether one element spans two varying slots
// (64-bit vectors wider than two components).
func (t Type) IsDualSlot() bool { return t.Bits == 64 && t.Elems > 2 }

// SlotCount returns the number of varying slots the type occupies.
// Struct varyings are approximated as one slot per array element; they
// are never repacked, only pinned.
func (t Type) SlotCount() int {
	n := 1
	if t.ArrayLen > 0 {
		n = int(t.ArrayLen)
	}
	perElem := 1
	if t.Kind == TypeMatrix {
		perElem = int(t.Cols)
	}
	if t.IsDualSlot() {
		perElem *= 2
	}
	return n * perElem
}

// Variable is one interface variable of a shader stage. The linking
// passes mutate Mode, Location, Component, and DriverLocation in place.
type Variable struct {
	Name string
	Mode Mode

	// Location is the varying slot, or LocUnassigned.
	Location int
	// Component is the sub-slot component offset, 0-3.
	Component uint8
	// DriverLocation is the dense storage index handed out by location
	// assignment.
	DriverLocation int
	// Index is the dual-source blend index (0 or 1).
	Index uint8

	Type Type

	// PerView marks a per-view array dimension (multiview); like
	// per-vertex dimensioning it wraps the interface type in an array.
	PerView bool
	// Patch marks tessellation per-patch varyings.
	Patch bool
	// Compact marks sub-word packed scalar arrays (clip/cull distance
	// style), which bypass component compaction.
	Compact bool
	// AlwaysActive excludes the variable from removal and repacking,
	// e.g. transform feedback targets.
	AlwaysActive bool
	// ExplicitXFB marks variables bound to an explicit transform
	// feedback buffer.
	ExplicitXFB bool

	Interp   InterpMode
	Sample   bool
	Centroid bool
}

// interpLoc returns the interpolation sample location of v.
func (v *Variable) interpLoc() InterpLoc {
	switch {
	case v.Sample:
		return InterpLocSample
	case v.Centroid:
		return InterpLocCentroid
	default:
		return InterpLocCenter
	}
}

// isBuiltin reports whether v sits in the built-in slot range.
func (v *Variable) isBuiltin() bool {
	return v.Location >= 0 && v.Location < SlotVar0
}

// AccessKind classifies one variable use inside a shader body.
type AccessKind uint8

const (
	// AccessLoad covers plain loads and all interpolated load forms
	// (at-centroid, at-sample, at-offset, at-vertex).
	AccessLoad AccessKind = iota
	AccessStore
)

// Access records one use of an interface variable by the stage body.
// The linking engine consumes the IR only through these records.
type Access struct {
	Var  *Variable
	Kind AccessKind
}

// Shader is the linking engine's view of one shader stage: its interface
// variables, the accesses its body performs on them, and the aggregate
// slot usage masks kept in sync by the linking passes.
type Shader struct {
	Stage     Stage
	Variables []*Variable
	Accesses  []Access

	// Generic slot masks, bit position == location.
	InputsRead     uint64
	OutputsWritten uint64
	OutputsRead    uint64

	// Patch slot masks, bit position == location - SlotPatch0.
	PatchInputsRead     uint32
	PatchOutputsWritten uint32
	PatchOutputsRead    uint32
}

// isPerVertex reports whether v's outer array dimension indexes vertices
// rather than data: inputs of tessellation and geometry stages, and
// tessellation control outputs.
func isPerVertex(v *Variable, stage Stage) bool {
	if v.Patch || !v.Type.IsArray() {
		return false
	}
	if v.Mode == ModeInput {
		return stage == StageTessCtrl || stage == StageTessEval || stage == StageGeometry
	}
	if v.Mode == ModeOutput {
		return stage == StageTessCtrl
	}
	return false
}

// varyingType returns v's type with per-vertex and per-view array
// dimensions stripped, the shape that determines its slot footprint.
func varyingType(v *Variable, stage Stage) Type {
	t := v.Type
	if isPerVertex(v, stage) || v.PerView {
		t = t.WithoutArray()
	}
	return t
}

// numComponents returns the per-slot component count of v; structs are
// conservatively treated as full slots.
func numComponents(v *Variable) int {
	if v.Type.Kind == TypeStruct {
		return 4
	}
	return int(v.Type.WithoutArray().Elems)
}
