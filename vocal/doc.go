// Package vocal provides small, explicit composition helpers for text-producing behaviors.
//
// This package intentionally supports two approaches:
//
//   - v1: Commentator + Wrapper — explicit runtime composition with guardrails
//     and structured/typed-ish errors (nil moods, nil speakers, unknown
//     repertoire entries). Best when you want validation and test assertions
//     around how a chain was wired.
//
//   - v2: generic mixin types (Prefixed, Complimented, Muted, Dog, Cat) —
//     construction-only composition with no runtime validation. A chain is a
//     concrete nested type, so a mis-wired composition is a compile error,
//     never a runtime one.
//
// Both versions avoid reflection. Heterogeneous composed actors are stored and
// invoked uniformly through the Speaker capability; a Troupe keeps them in
// insertion order and performs them once.
//
// Quick guidance
//
// Use v1 when you want:
//   - Composition decided at runtime (scene files, repertoires)
//   - Guardrails and structured errors you can assert in tests
//   - One decorator value reused across chains
//
// Use v2 when you want:
//   - Chains fixed at compile time
//   - Zero validation and zero allocation on the composition path
//   - The mixin reading: the chain is spelled out in the type
//
// examples can be found under examples/v1 and examples/v2
// Import
//
//	 "github.com/sghaida/menagerie/vocal"
package vocal
