package fonts

import (
	"os"
	"path/filepath"
	"testing"

	sderrors "github.com/typemark/shapediff/internal/errors"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStage(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	font := writeFont(t, t.TempDir(), "Test.ttf", []byte("font-bytes"))

	rel, err := Stage(font, root, ".tmp/fonts")
	if err != nil {
		t.Fatalf("Stage() error: %v", err)
	}
	if rel != ".tmp/fonts/Test.ttf" {
		t.Errorf("Stage() = %q", rel)
	}

	staged, err := os.ReadFile(filepath.Join(root, ".tmp", "fonts", "Test.ttf"))
	if err != nil {
		t.Fatalf("staged font missing: %v", err)
	}
	if string(staged) != "font-bytes" {
		t.Errorf("staged bytes = %q", staged)
	}
}

func TestStage_Idempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	font := writeFont(t, t.TempDir(), "Test.ttf", []byte("v1"))

	if _, err := Stage(font, root, ".tmp/fonts"); err != nil {
		t.Fatal(err)
	}

	// Re-staging under the same name reuses the existing copy.
	if err := os.WriteFile(font, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	rel, err := Stage(font, root, ".tmp/fonts")
	if err != nil {
		t.Fatalf("Stage() second call error: %v", err)
	}
	if rel != ".tmp/fonts/Test.ttf" {
		t.Errorf("Stage() = %q", rel)
	}

	staged, err := os.ReadFile(filepath.Join(root, ".tmp", "fonts", "Test.ttf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(staged) != "v1" {
		t.Errorf("existing staged copy was overwritten: %q", staged)
	}
}

func TestResolve_MissingFont(t *testing.T) {
	t.Parallel()

	_, err := Resolve(filepath.Join(t.TempDir(), "absent.ttf"))
	if err == nil {
		t.Fatal("expected error for missing font")
	}
	if !sderrors.IsKind(err, sderrors.KindEnvironment) {
		t.Errorf("expected environment error, got %v", err)
	}
}

func TestResolve_ExistingFont(t *testing.T) {
	t.Parallel()

	font := writeFont(t, t.TempDir(), "Real.ttf", []byte("x"))
	got, err := Resolve(font)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != font {
		t.Errorf("Resolve() = %q, want %q", got, font)
	}
}
