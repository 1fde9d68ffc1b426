package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const podfileLock = `PODS:
  - Alamofire (5.4.3)
  - Kingfisher (7.0.0):
    - Alamofire
`

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Success with lockfile",
			setup: func(t *testing.T, tmpDir string) {
				writeFile(t, filepath.Join(tmpDir, "bincache.yaml"), "version: \"1\"\n")
				writeFile(t, filepath.Join(tmpDir, "Podfile.lock"), podfileLock)
				writeFile(t, filepath.Join(tmpDir, "_Prebuild", "Manifest.lock"), podfileLock)
			},
			args:         []string{"bincache", "validate", "--json"},
			expectedExit: 0,
		},
		{
			name: "Missing lockfile",
			setup: func(t *testing.T, tmpDir string) {
				writeFile(t, filepath.Join(tmpDir, "bincache.yaml"), "version: \"1\"\n")
			},
			args:         []string{"bincache", "validate"},
			expectedExit: 1,
		},
		{
			name: "Invalid config",
			setup: func(t *testing.T, tmpDir string) {
				writeFile(t, filepath.Join(tmpDir, "bincache.yaml"), "mode: fast\n")
			},
			args:         []string{"bincache", "validate"},
			expectedExit: 1,
		},
		{
			name:         "Version",
			setup:        func(*testing.T, string) {},
			args:         []string{"bincache", "version"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			// Change to tmpDir for config discovery
			t.Chdir(tmpDir)

			os.Args = tt.args
			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
