// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nagalink builds linkable stage interfaces from naga IR modules.
//
// It extracts the entry point's argument and result bindings into a
// [github.com/gogpu/pipecore/varying.Shader], recording which inputs the
// function body actually references, so the varying passes can remove and
// repack the interface before code generation.
package nagalink
