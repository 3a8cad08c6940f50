// Command scenegen — v4 code-generated static composition roots (Go)
//
// Version v4 introduces code generation (cmd/scenegen) to keep a scene's
// composition explicit while moving every chain to compile time:
//
//   - You write a tiny scene.yaml describing the cast.
//   - You add a //go:generate ... directive in the owner package.
//   - scenegen generates a BuildScene() function that instantiates the
//     generic mixin types (vocal.Dog, vocal.Complimented, vocal.Muted, ...)
//     with the full chain spelled out in each member's type.
//
// There is no reflection, no runtime resolution, no registry lookup: a
// mis-spelled chain in the generated file is a compile error.
//
// When to use v4
//
// Use v4 when you want:
//
//   - Scenes fixed at build time with zero runtime validation.
//   - The chain visible in the type of every member.
//   - A composition root that is reviewable generated code, not hand-rolled nesting.
//
// When NOT to use v4
//
// Avoid v4 if the scene is decided at runtime (user input, config reloads).
// Use cmd/recite with a repertoire in those cases.
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
//   - mood: "none", "positive", or "negative"
//   - wraps: optional list of "compliment" / "cutoff", applied inner to outer
//
// Usage
//
//	scenegen -scene scene.yaml -out scene.gen.go -pkg v4
//
// Flags:
//   - -scene: path to the scene YAML (required)
//   - -out: output .gen.go file path (required)
//   - -pkg: package name for the generated file (default "scene")
//   - -vocal-import: import path of the vocal package
//     (default "github.com/sghaida/menagerie/vocal")
//
// Output is gofmt-formatted and written atomically (temp file + rename), so a
// failed run never leaves a partial file behind.
package main
