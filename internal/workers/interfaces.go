// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

// Package workers provides abstractions for managing and running
// long-lived workers in the application, such as transport listeners.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any long-lived worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}
