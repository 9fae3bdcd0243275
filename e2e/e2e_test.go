//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var cargostepBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "cargostep-e2e-*")
	if err != nil {
		panic(err)
	}

	cargostepBinary = filepath.Join(tmpDir, "cargostep")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", cargostepBinary, "./cmd/cargostep")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build cargostep binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

// setupE2E puts cargostep and a scripted stand-in for cargo on PATH.
func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	fakeCargo, err := os.ReadFile(filepath.Join("fixtures", "cargo.sh"))
	if err != nil {
		return err
	}

	toolDir := filepath.Join(env.WorkDir, ".tools")
	if err := os.MkdirAll(toolDir, 0o750); err != nil {
		return err
	}
	//nolint:gosec // the stand-in must be executable
	if err := os.WriteFile(filepath.Join(toolDir, "cargo"), fakeCargo, 0o755); err != nil {
		return err
	}

	binDir := filepath.Dir(cargostepBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+toolDir+string(os.PathListSeparator)+currentPath)

	return nil
}
