// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

import (
	"github.com/gogpu/pipecore"
)

// tcsAddOutputReads accumulates the output slots a tessellation control
// shader reads back itself. TCS outputs are shared across invocations of
// a patch, so an output read within the stage keeps the variable alive
// even when the next stage ignores it.
func tcsAddOutputReads(shader *Shader, read, patchesRead *[4]uint64) {
	for _, a := range shader.Accesses {
		if a.Kind != AccessLoad || a.Var.Mode != ModeOutput {
			continue
		}
		v := a.Var
		used := read
		if v.Patch {
			used = patchesRead
		}
		mask := VariableIOMask(v, shader.Stage)
		for i := 0; i < numComponents(v) && int(v.Component)+i < 4; i++ {
			used[int(v.Component)+i] |= mask
		}
	}
}

// RemoveUnusedIOVars demotes interface variables of the given mode whose
// slots the other stage never touches. used and usedPatches carry the
// other stage's per-component slot masks. Built-in, always-active, and
// explicit transform feedback variables are kept unconditionally.
//
// Demoted variables become temporaries at location zero; a dead variable
// elimination pass is expected to reclaim them. Reports whether any
// variable was demoted.
func RemoveUnusedIOVars(shader *Shader, mode Mode, used, usedPatches *[4]uint64) bool {
	progress := false

	for _, v := range shader.Variables {
		if v.Mode != mode {
			continue
		}
		other := used
		if v.Patch {
			other = usedPatches
		}
		if v.isBuiltin() {
			continue
		}
		if v.AlwaysActive || v.ExplicitXFB {
			continue
		}

		if other[v.Component]&VariableIOMask(v, shader.Stage) == 0 {
			pipecore.Logger().Debug("varying: demoting unused interface variable",
				"name", v.Name, "location", v.Location)
			v.Mode = ModeTemp
			v.Location = 0
			progress = true
		}
	}
	return progress
}

// RemoveUnusedVaryings demotes producer outputs the consumer never reads
// and consumer inputs the producer never writes. Reports whether either
// stage changed.
func RemoveUnusedVaryings(producer, consumer *Shader) bool {
	var read, written [4]uint64
	var patchesRead, patchesWritten [4]uint64

	for _, v := range producer.Variables {
		if v.Mode != ModeOutput {
			continue
		}
		used := &written
		if v.Patch {
			used = &patchesWritten
		}
		mask := VariableIOMask(v, producer.Stage)
		for i := 0; i < numComponents(v) && int(v.Component)+i < 4; i++ {
			used[int(v.Component)+i] |= mask
		}
	}

	for _, v := range consumer.Variables {
		if v.Mode != ModeInput {
			continue
		}
		used := &read
		if v.Patch {
			used = &patchesRead
		}
		mask := VariableIOMask(v, consumer.Stage)
		for i := 0; i < numComponents(v) && int(v.Component)+i < 4; i++ {
			used[int(v.Component)+i] |= mask
		}
	}

	if producer.Stage == StageTessCtrl {
		tcsAddOutputReads(producer, &read, &patchesRead)
	}

	progress := RemoveUnusedIOVars(producer, ModeOutput, &read, &patchesRead)
	progress = RemoveUnusedIOVars(consumer, ModeInput, &written, &patchesWritten) || progress
	return progress
}
