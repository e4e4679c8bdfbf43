// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the session store, and the server adapter
// into a single process lifecycle: bootstrap the persisted session once,
// then alternate between the login flow and the authenticated main loop
// until the user quits.
package client
