// Command recite — v3 repertoire-driven scene runner (Go)
//
// Version v3 keeps composition explicit but moves the choice of chains to
// runtime: a YAML scene names moods and wraps by repertoire key, and recite
// resolves them, composes each actor, and performs the troupe.
//
// No reflection dispatch, no codegen, no runtime magic once the troupe is
// built — just explicit resolution at the composition root with typed errors
// for every wiring mistake.
//
// Why v3 exists
//
// Static chains (v2/v4) are ideal when the scene is fixed, but:
//
//   - Scene files let non-Go callers describe a cast
//   - The same binary can perform any well-formed scene
//   - Wiring mistakes surface as typed, assertable errors instead of compile errors
//
// When to use v3
//
// Use v3 when you want:
//
//   - Scenes decided at runtime (files, user input)
//   - Typed resolution errors (missing entry, wrong kind, unknown actor)
//   - One repertoire shared across many scenes
//
// When NOT to use v3
//
// Avoid v3 if the cast is known at build time; use the generic mixin types
// directly (v2) or generate the composition root with cmd/scenegen (v4).
//
// Scene format (scene.yaml)
//
// Minimal example:
//
//	scene:
//	  - actor: dog
//	    mood: positive
//	    wraps: [compliment]
//	  - actor: cat
//	    mood: negative
//	    wraps: [cutoff]
//
// Fields:
//   - actor: "dog" or "cat"
//   - mood: a repertoire mood key ("none", "positive", "negative")
//   - wraps: optional repertoire wrap keys ("compliment", "cutoff"), applied inner to outer
//
// Usage
//
//	recite -scene scene.yaml
//	recite -scene scene.yaml -out performance.txt
//
// With -out, the performance is written atomically (temp file + rename);
// without it, lines go to stdout, one per actor, in scene order.
package main
