// SPDX-License-Identifier: Apache-2.0

// Package session owns the client-side authentication lifecycle of the
// SAR-Drone client: who is logged in, with what token, and whether that
// state survives a restart.
//
// The [Store] is the single source of truth for authentication state and the
// only writer of the durable session record. The transport layer
// ([adapter.ServerAdapter]) stays a pure data pipe; the Store validates its
// payloads, mutates in-memory state, and persists or heals the local record.
//
// Lifecycle: [Store.Bootstrap] runs once at process start and restores a
// prior session from the local record, deleting corrupt entries instead of
// surfacing them. [Store.Login] and [Store.Logout] drive the steady-state
// transitions. Operations are not mutually exclusive with each other — the
// UI drives them sequentially; concurrent conflicting calls resolve as last
// writer wins.
package session
