// Package menagerie provides a set of explicit behavior composition approaches for Go.
//
// This repository explores a progression of small, opinionated patterns around
// one toy domain: fixed-label animals that speak a line built from a composed
// chain of commentary-producing moods.
//
//   - v1: runtime wrappers + guardrails (typed-ish wiring errors, explicit Compose)
//   - v2: construction only (generic mixin types, compile-time checked chains)
//   - v3: named repertoire resolution + env config at the composition root
//   - v4: code-generated static composition roots (scenegen)
//
// The goal is to keep composition explicit (usually in your composition root /
// main), avoid reflection-based dispatch, and keep the surface area
// intentionally small.
//
// Package menagerie See subpackages:
//   - vocal: library package used by the examples / tools
//   - cmd/recite, cmd/scenegen: scene runner and code generator for v3/v4 style wiring
//   - examples/*: runnable examples for each version
package menagerie
