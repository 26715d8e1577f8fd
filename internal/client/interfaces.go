// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client runs one CLI invocation.
type Client interface {
	// Run executes the command and returns its error, if any.
	Run() error
}

var _ Client = (*App)(nil)
