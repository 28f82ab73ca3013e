// Copyright 2026 Neuronika Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neuronika is a dynamic reverse-mode automatic-differentiation
// engine over dense N-D tensors.
//
// Expressions recorded on variables form a define-by-run graph; forward
// evaluation is lazy and memoized, and backward passes propagate gradients
// through per-node accumulators in topological order.
//
// The API is split across subpackages:
//
//   - tensor      — shapes, raw buffers, creation helpers, the kernel interface
//   - backend/cpu — the CPU kernel implementation
//   - autodiff    — graph variables: record, evaluate, differentiate
//   - nn          — layers, activations, losses
//   - optim       — optimizers, penalties, learning-rate schedulers
package neuronika

// Version is the library version reported by the CLI.
const Version = "v0.1.0"
