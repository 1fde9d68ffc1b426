package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/bincache/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	// tmp/
	//   .git/config
	//   xcuserdata/state
	//   Sources/main.swift
	//   .DS_Store
	//   README.md
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "xcuserdata", "state"), "user state")
	writeFile(t, filepath.Join(tmpDir, "Sources", "main.swift"), "print()")
	writeFile(t, filepath.Join(tmpDir, ".DS_Store"), "finder")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker(fs.DefaultIgnores...)

	var files []string
	for path, err := range walker.WalkFiles(tmpDir) {
		if err != nil {
			t.Fatal(err)
		}
		rel, err := filepath.Rel(tmpDir, path)
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, filepath.ToSlash(rel))
	}

	want := []string{"README.md", "Sources/main.swift"}
	if len(files) != len(want) {
		t.Fatalf("expected files %v, got %v", want, files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("expected files %v, got %v", want, files)
		}
	}
}

func TestWalker_WalkFilesMissingRoot(t *testing.T) {
	walker := fs.NewWalker()

	var errs int
	for _, err := range walker.WalkFiles(filepath.Join(t.TempDir(), "missing")) {
		if err != nil {
			errs++
		}
	}
	if errs != 1 {
		t.Errorf("expected one error, got %d", errs)
	}
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher(fs.NewWalker())

	hash1, err := hasher.ComputeFileHash(path)
	if err != nil {
		t.Fatalf("ComputeFileHash failed: %v", err)
	}
	if hash1 == 0 {
		t.Error("expected non-zero hash")
	}

	hash2, err := hasher.ComputeFileHash(path)
	if err != nil {
		t.Fatal(err)
	}
	if hash1 != hash2 {
		t.Error("expected deterministic hash")
	}
}

func TestHasher_HashDir(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker(fs.DefaultIgnores...))

	newPod := func() string {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "Sources", "Pod.swift"), "struct Pod {}")
		writeFile(t, filepath.Join(dir, "Pod.podspec"), "spec")
		return dir
	}

	dirA, dirB := newPod(), newPod()

	hashA, err := hasher.HashDir(dirA)
	if err != nil {
		t.Fatalf("HashDir failed: %v", err)
	}
	if len(hashA) != 16 {
		t.Errorf("expected 16 hex digits, got %q", hashA)
	}

	// 1. Same content at another location hashes the same
	hashB, err := hasher.HashDir(dirB)
	if err != nil {
		t.Fatal(err)
	}
	if hashA != hashB {
		t.Errorf("expected location independent hash, got %q and %q", hashA, hashB)
	}

	// 2. Ignored files do not matter
	writeFile(t, filepath.Join(dirB, ".DS_Store"), "finder")
	writeFile(t, filepath.Join(dirB, ".git", "HEAD"), "ref")
	if hashB, err = hasher.HashDir(dirB); err != nil {
		t.Fatal(err)
	}
	if hashA != hashB {
		t.Error("expected ignored files to be skipped")
	}

	// 3. Content changes do
	writeFile(t, filepath.Join(dirB, "Sources", "Pod.swift"), "struct Pod { let x = 1 }")
	if hashB, err = hasher.HashDir(dirB); err != nil {
		t.Fatal(err)
	}
	if hashA == hashB {
		t.Error("expected hash to change when file content changes")
	}

	// 4. So do renames
	if err := os.Rename(filepath.Join(dirA, "Pod.podspec"), filepath.Join(dirA, "Other.podspec")); err != nil {
		t.Fatal(err)
	}
	renamed, err := hasher.HashDir(dirA)
	if err != nil {
		t.Fatal(err)
	}
	if renamed == hashA {
		t.Error("expected hash to change when a file is renamed")
	}
}

func TestHasher_HashDirErrors(t *testing.T) {
	hasher := fs.NewHasher(fs.NewWalker())
	tmpDir := t.TempDir()

	if _, err := hasher.HashDir(filepath.Join(tmpDir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(tmpDir, "file")
	writeFile(t, file, "x")
	if _, err := hasher.HashDir(file); err == nil {
		t.Error("expected error for a regular file")
	}
}
