package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridviz"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRoot()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, gridviz.Version) {
		t.Errorf("output %q does not contain version %q", out, gridviz.Version)
	}
}

func TestCasesCommand(t *testing.T) {
	out, err := execute(t, "cases")
	if err != nil {
		t.Fatalf("cases failed: %v", err)
	}
	for _, name := range []string{"Reference", "Extension", "Pure Shear", "Rotation"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing case %q", name)
		}
	}
	if !strings.Contains(out, "isochoric") {
		t.Error("output does not mark isochoric cases")
	}
}

func TestRenderCommandWritesPNG(t *testing.T) {
	t.Setenv("GRIDVIZ_WIDTH", "280")
	t.Setenv("GRIDVIZ_HEIGHT", "140")
	out := filepath.Join(t.TempDir(), "figure.png")

	if _, err := execute(t, "render", "--output", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PNG is empty")
	}
}

func TestRenderCommandNoSave(t *testing.T) {
	t.Setenv("GRIDVIZ_WIDTH", "280")
	t.Setenv("GRIDVIZ_HEIGHT", "140")
	out := filepath.Join(t.TempDir(), "figure.png")

	if _, err := execute(t, "render", "--output", out, "--no-save"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("render --no-save wrote an output file")
	}
}

func TestRenderCommandBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("step: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "render", "--config", path); err == nil {
		t.Error("render accepted a scene with negative step")
	}
}
