// Package server implements the record service HTTP API surface.
//
// Owns:
//   - HTTP routing, handlers, and request/response contracts
//   - Store implementations (in-memory map and SQLite)
//   - API-level invariants and behavior
//
// Does not own:
//   - Process configuration and lifecycle (cmd/recordsvc)
//
// Invariants:
//   - JSON responses are consistent via writeJSON
//   - New ids are assigned as max existing id + 1 under a single
//     critical section; concurrent creates never collide
//   - A missing record is ErrNotFound, never a nil record
package server
