// Package fonts provides default font probing and staging of font files
// into the sandbox-visible scratch directory.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sderrors "github.com/typemark/shapediff/internal/errors"
)

// defaultCandidates is the fixed list of well-known system font
// locations probed when no font is given.
var defaultCandidates = []string{
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
	"/System/Library/Fonts/Geneva.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// PickDefault returns the first existing font from the probe list.
func PickDefault() (string, error) {
	for _, p := range defaultCandidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", sderrors.Environment(
		"no default font found; pass --font /path/to/font.(ttf|otf|ttc)")
}

// Resolve returns the font to use: the given path if set (which must
// exist), otherwise the first default candidate that exists.
func Resolve(fontPath string) (string, error) {
	if fontPath == "" {
		return PickDefault()
	}
	if _, err := os.Stat(fontPath); err != nil {
		return "", sderrors.Environmentf("font not found: %s", fontPath)
	}
	return fontPath, nil
}

// Stage copies the font into the scratch directory under the work root
// and returns the work-root-relative staged path. Staging is keyed by
// file name and idempotent: an already-staged font is reused rather
// than re-copied, so the scratch directory is safely reusable across
// runs. The relative path stays valid inside a restricted-filesystem
// execution sandbox rooted at the work root.
func Stage(fontPath, root, scratch string) (string, error) {
	scratchDir := filepath.Join(root, scratch)
	if err := os.MkdirAll(scratchDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	name := filepath.Base(fontPath)
	rel := filepath.Join(scratch, name)
	dst := filepath.Join(scratchDir, name)

	if _, err := os.Stat(dst); err == nil {
		return toSlash(rel), nil
	}

	// Copy the bytes only. Some system fonts carry flags or extended
	// attributes that break metadata-preserving copies.
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return "", fmt.Errorf("failed to read font: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to stage font: %w", err)
	}

	return toSlash(rel), nil
}

// toSlash normalizes the staged path for the producer argv so every
// producer receives the identical triple regardless of host separator.
func toSlash(p string) string {
	return strings.ReplaceAll(p, string(filepath.Separator), "/")
}
