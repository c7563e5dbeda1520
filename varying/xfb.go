// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package varying

// LinkXFBVaryings propagates the always-active flag from transform
// feedback outputs of the producer to the matching consumer inputs, so
// the removal and compaction passes leave both sides of a captured
// varying alone.
func LinkXFBVaryings(producer, consumer *Shader) {
	var inputVars [MaxVarying]*Variable

	for _, v := range consumer.Variables {
		if v.Mode != ModeInput {
			continue
		}
		if v.Location >= SlotVar0 && v.Location-SlotVar0 < MaxVarying {
			inputVars[v.Location-SlotVar0] = v
		}
	}

	for _, v := range producer.Variables {
		if v.Mode != ModeOutput {
			continue
		}
		if v.Location < SlotVar0 || v.Location-SlotVar0 >= MaxVarying {
			continue
		}
		if !v.AlwaysActive {
			continue
		}
		if in := inputVars[v.Location-SlotVar0]; in != nil {
			in.AlwaysActive = true
		}
	}
}
