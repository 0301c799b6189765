package testhelpers

import (
	"testing"
)

// Scene is an on-disk repository that the test process has changed into.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a temporary directory, makes it the
// working directory for the rest of the test and runs setup.
// Tests using a scene must not run in parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	dir := t.TempDir()

	scene := &Scene{
		Dir:  dir,
		Repo: NewDiskGitRepo(t, dir),
	}

	t.Chdir(dir)

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}
