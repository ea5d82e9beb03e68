package repository

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
)

// Detector identifies Python project root folders
type Detector struct {
	// project root marker files/directories, in priority order
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New(markers ...string) *Detector {
	if len(markers) == 0 {
		markers = []string{
			"pyproject.toml",
			"setup.cfg",
			"setup.py",
			"requirements.txt",
			"tox.ini",
			".git",
		}
	}
	return &Detector{markers: markers, fs: afs.New()}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{RootPath: startDir}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Marker = marker
	}
	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	info.Name = d.projectName(ctx, info.RootPath)
	return info, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

var setupNameRegex = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)

// projectName extracts name from pyproject.toml or setup.py, falling back to directory name
func (d *Detector) projectName(ctx context.Context, rootPath string) string {
	if content, err := d.fs.DownloadWithURL(ctx, filepath.Join(rootPath, "pyproject.toml")); err == nil {
		project := &pyProject{}
		if _, err = toml.Decode(string(content), project); err == nil {
			if project.Project.Name != "" {
				return project.Project.Name
			}
			if project.Tool.Poetry.Name != "" {
				return project.Tool.Poetry.Name
			}
		}
	}
	if content, err := d.fs.DownloadWithURL(ctx, filepath.Join(rootPath, "setup.py")); err == nil {
		if matches := setupNameRegex.FindSubmatch(content); len(matches) == 2 {
			return string(matches[1])
		}
	}
	return filepath.Base(rootPath)
}
