package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "index.uts")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := NormalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "base")
	target := filepath.Join(baseDir, "uni_modules", "index.uts")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if got != "uni_modules/index.uts" {
		t.Fatalf("expected relative path, got %q", got)
	}
}

func TestNormalizePathNFC(t *testing.T) {
	// "é" in NFD form: e + combining acute accent
	nfd := "pages/cafe\u0301/index.vue"
	got := NormalizePath(nfd)
	if got != "pages/caf\u00e9/index.vue" {
		t.Fatalf("NormalizePath did not compose: %q", got)
	}
	if NormalizePath("") != "" {
		t.Fatal("empty path must stay empty")
	}
}
