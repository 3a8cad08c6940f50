// cmd/scenegen/main.go
package main

import (
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// This binary is a code-generation tool.
//
// It reads a YAML scene describing a cast of actors and their mood chains,
// then generates a static composition root that instantiates the generic
// mixin types with every chain resolved at compile time.
//
// Key behaviors:
// - Reads scene YAML: ordered members with actor kind, mood key, wrap keys
// - Validates every key against the fixed built-in tables before generating
// - Emits BuildScene() returning the cast in scene order
// - Formats the output with go/format
// - Writes output atomically (temp file + rename) to avoid partial writes

// Member describes one actor in the scene.
type Member struct {
	// Actor is the actor kind: "dog" or "cat".
	Actor string `yaml:"actor"`

	// Mood is the base mood key: "none", "positive", or "negative".
	Mood string `yaml:"mood"`

	// Wraps are decorator keys applied inner to outer.
	Wraps []string `yaml:"wraps"`
}

// Scene is the full input schema consumed by the generator.
type Scene struct {
	Scene []Member `yaml:"scene"`
}

// Generation tables: scene keys to vocal type names.
var (
	actorTypes = map[string]string{
		"dog": "vocal.Dog",
		"cat": "vocal.Cat",
	}

	moodTypes = map[string]string{
		"none":     "vocal.NoComment",
		"positive": "vocal.PositiveVibe",
		"negative": "vocal.NegativeVibe",
	}

	wrapTypes = map[string]string{
		"compliment": "vocal.Complimented",
		"cutoff":     "vocal.Muted",
	}
)

// templateData is the input passed to the Go template.
type templateData struct {
	Package     string
	VocalImport string
	Members     []string
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("scenegen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	scenePath := flags.String("scene", "", "path to scene.yaml")
	outPath := flags.String("out", "", "output .gen.go file path")
	pkgName := flags.String("pkg", "scene", "package name for the generated file")
	vocalImport := flags.String("vocal-import", "github.com/sghaida/menagerie/vocal", "import path of the vocal package")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*scenePath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: scenegen -scene <scene.yaml> -out <file.gen.go> [-pkg name] [-vocal-import path]")
		return 2
	}

	sceneBytes, err := os.ReadFile(*scenePath)
	must(err)

	var scene Scene
	must(yaml.Unmarshal(sceneBytes, &scene))

	validateScene(&scene)

	members := make([]string, 0, len(scene.Scene))
	for _, m := range scene.Scene {
		members = append(members, memberExpr(m))
	}

	data := templateData{
		Package:     *pkgName,
		VocalImport: *vocalImport,
		Members:     members,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	formatted, err := format.Source([]byte(out.String()))
	must(err)

	must(writeFileAtomic(filepath.Clean(*outPath), formatted, 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateScene validates semantic correctness of the input scene.
func validateScene(scene *Scene) {
	if len(scene.Scene) == 0 {
		panic(fmt.Errorf("scene must have at least 1 member"))
	}

	for i, m := range scene.Scene {
		if _, ok := actorTypes[m.Actor]; !ok {
			panic(fmt.Errorf("scene member %d: unknown actor %q (want dog|cat)", i, m.Actor))
		}
		if _, ok := moodTypes[m.Mood]; !ok {
			panic(fmt.Errorf("scene member %d: unknown mood %q (want none|positive|negative)", i, m.Mood))
		}
		for _, w := range m.Wraps {
			if _, ok := wrapTypes[w]; !ok {
				panic(fmt.Errorf("scene member %d: unknown wrap %q (want compliment|cutoff)", i, w))
			}
		}
	}
}

// memberExpr builds the composite literal for one scene member.
//
// Wraps nest inner to outer, so the member's full chain is visible in its
// type, e.g. vocal.Dog[vocal.Complimented[vocal.PositiveVibe]]{...}.
func memberExpr(m Member) string {
	typeExpr := moodTypes[m.Mood]
	valueExpr := typeExpr + "{}"

	for _, w := range m.Wraps {
		wrapType := wrapTypes[w]
		valueExpr = wrapType + "[" + typeExpr + "]{Inner: " + valueExpr + "}"
		typeExpr = wrapType + "[" + typeExpr + "]"
	}

	return actorTypes[m.Actor] + "[" + typeExpr + "]{Mood: " + valueExpr + "}"
}

// genTemplate is the Go source template used to generate the composition root.
var genTemplate = template.Must(
	template.New("scenegen").Parse(`// Code generated by scenegen; DO NOT EDIT.

package {{.Package}}

import (
	vocal "{{.VocalImport}}"
)

// BuildScene returns the composed cast in scene order.
func BuildScene() []vocal.Speaker {
	return []vocal.Speaker{
{{- range .Members}}
		{{.}},
{{- end}}
	}
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
