package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, location, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
}

func TestDetector_Detect(t *testing.T) {
	root := t.TempDir()
	web := filepath.Join(root, "web")
	write(t, filepath.Join(root, "go.mod"), "module github.com/acme/console\n\ngo 1.23\n")
	write(t, filepath.Join(web, "package.json"), `{"name": "@acme/web", "private": true}`)
	write(t, filepath.Join(web, "src", "pages", "Home.tsx"), "export {}\n")
	write(t, filepath.Join(root, "tools", "gen.go"), "package tools\n")
	write(t, filepath.Join(root, "nameless", "package.json"), `{"private": true}`)

	tests := []struct {
		name     string
		location string
		wantRoot string
		wantType string
		wantName string
	}{
		{name: "package.json from nested file", location: filepath.Join(web, "src", "pages", "Home.tsx"), wantRoot: web, wantType: TypeJavaScript, wantName: "@acme/web"},
		{name: "package.json from root dir", location: web, wantRoot: web, wantType: TypeJavaScript, wantName: "@acme/web"},
		{name: "go module", location: filepath.Join(root, "tools"), wantRoot: root, wantType: TypeGo, wantName: "github.com/acme/console"},
		{name: "unnamed package", location: filepath.Join(root, "nameless"), wantRoot: filepath.Join(root, "nameless"), wantType: TypeJavaScript, wantName: "nameless"},
	}
	detector := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := detector.Detect(context.Background(), tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, project.RootPath)
			assert.Equal(t, tt.wantType, project.Type)
			assert.Equal(t, tt.wantName, project.Name)
		})
	}
}

func TestDetector_DefaultPatterns(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "with-src", "src", "App.tsx"), "export {}\n")
	write(t, filepath.Join(root, "flat", "App.tsx"), "export {}\n")
	detector := New()
	ctx := context.Background()

	patterns := detector.DefaultPatterns(ctx, &Project{RootPath: filepath.Join(root, "with-src")})
	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(root, "with-src")) + "/src/**/*.{js,jsx,ts,tsx}"}, patterns)

	patterns = detector.DefaultPatterns(ctx, &Project{RootPath: filepath.Join(root, "flat")})
	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(root, "flat")) + "/**/*.{js,jsx,ts,tsx}"}, patterns)
}

func TestDetector_DetectMissing(t *testing.T) {
	_, err := New().Detect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
