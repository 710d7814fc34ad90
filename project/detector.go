package project

import (
	"context"
	"encoding/json"
	"path"
	"path/filepath"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

const (
	TypeJavaScript = "javascript"
	TypeGo         = "go"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)

// SourceExtensions is the brace group used by default include patterns
const SourceExtensions = "{js,jsx,ts,tsx}"

// Project represents a detected project root
type Project struct {
	RootPath string // absolute path of the project root
	Type     string // javascript, go, git or unknown
	Name     string
}

// Detector identifies project roots by marker files
type Detector struct {
	fs      afs.Service
	markers []string
}

// New creates a detector; package.json wins over go.mod, a repository root is the last resort
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"package.json", // JavaScript/TypeScript projects
			"go.mod",       // Go modules embedding a web frontend
			".git",
		},
	}
}

// Detect returns the nearest project enclosing location; with no marker found the location itself is the root
func (d *Detector) Detect(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	object, err := d.fs.Object(ctx, absPath)
	if err != nil {
		return nil, err
	}
	if !object.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	ret := &Project{RootPath: startDir, Type: TypeUnknown, Name: filepath.Base(startDir)}
	rootPath, marker := d.findRoot(ctx, startDir)
	if rootPath == "" {
		return ret, nil
	}
	ret.RootPath = rootPath
	ret.Type = projectType(marker)
	ret.Name = d.extractName(ctx, rootPath, ret.Type)
	return ret, nil
}

// DefaultPatterns returns the include pattern used when no pattern is given:
// the src folder when present, the whole project otherwise
func (d *Detector) DefaultPatterns(ctx context.Context, project *Project) []string {
	root := filepath.ToSlash(project.RootPath)
	if ok, _ := d.fs.Exists(ctx, filepath.Join(project.RootPath, "src")); ok {
		return []string{path.Join(root, "src") + "/**/*." + SourceExtensions}
	}
	return []string{root + "/**/*." + SourceExtensions}
}

func (d *Detector) findRoot(ctx context.Context, startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
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

func projectType(marker string) string {
	switch marker {
	case "package.json":
		return TypeJavaScript
	case "go.mod":
		return TypeGo
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}

func (d *Detector) extractName(ctx context.Context, rootPath, kind string) string {
	var name string
	switch kind {
	case TypeJavaScript:
		name = d.packageName(ctx, filepath.Join(rootPath, "package.json"))
	case TypeGo:
		name = d.moduleName(ctx, filepath.Join(rootPath, "go.mod"))
	}
	if name == "" {
		return filepath.Base(rootPath)
	}
	return name
}

func (d *Detector) packageName(ctx context.Context, location string) string {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return ""
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

func (d *Detector) moduleName(ctx context.Context, location string) string {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return ""
	}
	if mod, _ := modfile.ParseLax(location, data, nil); mod != nil && mod.Module != nil {
		return mod.Module.Mod.Path
	}
	return ""
}
