package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectProject(t *testing.T) {
	tests := []struct {
		description string
		files       map[string]string
		target      string
		expectRoot  string
		expect      *Project
	}{
		{
			description: "pyproject with project name",
			files: map[string]string{
				"svc/pyproject.toml":   "[project]\nname = \"billing\"\n",
				"svc/billing/api.py":   "x = 1\n",
				"svc/billing/__init__": "",
			},
			target:     "svc/billing/api.py",
			expectRoot: "svc",
			expect:     &Project{Marker: "pyproject.toml", Name: "billing", RelativePath: "billing/api.py"},
		},
		{
			description: "poetry name",
			files: map[string]string{
				"app/pyproject.toml": "[tool.poetry]\nname = \"poetic\"\n",
				"app/main.py":        "",
			},
			target:     "app/main.py",
			expectRoot: "app",
			expect:     &Project{Marker: "pyproject.toml", Name: "poetic", RelativePath: "main.py"},
		},
		{
			description: "setup.py name",
			files: map[string]string{
				"legacy/setup.py":   "setup(name='legacy-tool', version='1.0')\n",
				"legacy/pkg/run.py": "",
			},
			target:     "legacy/pkg/run.py",
			expectRoot: "legacy",
			expect:     &Project{Marker: "setup.py", Name: "legacy-tool", RelativePath: "pkg/run.py"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			baseDir := t.TempDir()
			for name, content := range tc.files {
				location := filepath.Join(baseDir, name)
				if !assert.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755)) {
					return
				}
				if !assert.NoError(t, os.WriteFile(location, []byte(content), 0o644)) {
					return
				}
			}
			// markers limited to files created by the test, so the walk cannot escape into the temp dir parents
			detector := New("pyproject.toml", "setup.py")
			actual, err := detector.DetectProject(context.Background(), filepath.Join(baseDir, tc.target))
			if !assert.NoError(t, err) {
				return
			}
			expectRoot, _ := filepath.Abs(filepath.Join(baseDir, tc.expectRoot))
			tc.expect.RootPath = expectRoot
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestDetector_DetectProject_Missing(t *testing.T) {
	_, err := New().DetectProject(context.Background(), filepath.Join(t.TempDir(), "missing.py"))
	assert.Error(t, err)
}
