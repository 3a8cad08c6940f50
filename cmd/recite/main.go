// cmd/recite/main.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/menagerie/vocal"
)

// This binary performs a YAML scene.
//
// It reads a scene describing a cast of actors and their mood chains, resolves
// every key through the default repertoire, composes the actors, and writes
// one line per actor in scene order.
//
// Key behaviors:
// - Reads scene YAML: ordered members with actor kind, mood key, wrap keys
// - Resolves moods/wraps through vocal.DefaultRepertoire with typed errors
// - Performs to stdout, or atomically to -out (temp file + rename)

// Member describes one actor in the scene.
type Member struct {
	// Actor is the actor kind: "dog" or "cat".
	Actor string `yaml:"actor"`

	// Mood is a repertoire mood key.
	Mood string `yaml:"mood"`

	// Wraps are repertoire wrap keys applied inner to outer.
	Wraps []string `yaml:"wraps"`
}

// Scene is the full input schema consumed by the runner.
type Scene struct {
	Scene []Member `yaml:"scene"`
}

// unknownActorError is returned when a scene member names an actor kind the
// runner does not know.
type unknownActorError struct{ Actor string }

// Error implements the error interface.
func (e unknownActorError) Error() string {
	// Example: recite: unknown actor kind "fish"
	return "recite: unknown actor kind " + strconv.Quote(e.Actor)
}

// run executes the runner logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("recite", flag.ContinueOnError)
	flags.SetOutput(stderr)

	scenePath := flags.String("scene", "", "path to scene.yaml")
	outPath := flags.String("out", "", "optional output file (default stdout)")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*scenePath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: recite -scene <scene.yaml> [-out file]")
		return 2
	}

	sceneBytes, err := os.ReadFile(*scenePath)
	must(err)

	var scene Scene
	must(yaml.Unmarshal(sceneBytes, &scene))

	validateScene(&scene)

	troupe, err := buildTroupe(&scene, vocal.DefaultRepertoire())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "recite:", err)
		return 1
	}

	if strings.TrimSpace(*outPath) == "" {
		must(troupe.Perform(stdout))
		return 0
	}

	var buf bytes.Buffer
	must(troupe.Perform(&buf))
	must(writeFileAtomic(filepath.Clean(*outPath), buf.Bytes(), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// validateScene validates structural correctness of the input scene.
// Key resolution is left to the repertoire so mistakes surface as typed errors.
func validateScene(scene *Scene) {
	if len(scene.Scene) == 0 {
		panic(fmt.Errorf("scene must have at least 1 member"))
	}
}

// buildTroupe resolves and composes every member in scene order.
//
// It stops at the first resolution or composition error and returns it;
// possible errors are the repertoire's typed errors (MissingEntryError,
// WrongKindError), unknownActorError, and the vocal guardrail errors.
func buildTroupe(scene *Scene, rep *vocal.MapRepertoire) (*vocal.Troupe, error) {
	troupe, err := vocal.NewTroupe()
	if err != nil {
		return nil, err
	}

	for _, m := range scene.Scene {
		mood, err := rep.MoodFor(m.Mood)
		if err != nil {
			return nil, err
		}

		wraps := make([]vocal.Wrapper, 0, len(m.Wraps))
		for _, key := range m.Wraps {
			wrap, err := rep.WrapFor(key)
			if err != nil {
				return nil, err
			}
			wraps = append(wraps, wrap)
		}

		chain, err := vocal.Compose(mood, wraps...)
		if err != nil {
			return nil, err
		}

		var actor *vocal.Actor
		switch m.Actor {
		case "dog":
			actor, err = vocal.NewDog(chain)
		case "cat":
			actor, err = vocal.NewCat(chain)
		default:
			return nil, unknownActorError{Actor: m.Actor}
		}
		if err != nil {
			return nil, err
		}

		if err := troupe.Add(actor); err != nil {
			return nil, err
		}
	}

	return troupe, nil
}

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
