// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-note-keeper.
//
// Each invocation runs one subcommand (signup, login, list, get, create,
// update, delete, share, search, version) against the server through
// [adapter.ServerAdapter] and prints the result as JSON. Authenticated
// subcommands take the bearer token from the -token flag or ADAPTER_TOKEN.
package client
