package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MockRunner is a mock implementation of the Runner interface for testing
type MockRunner struct {
	ReturnOutput string
	ReturnError  error
	CommandRun   string
	ArgsRun      []string
}

// Run implements the Runner interface
func (m *MockRunner) Run(name string, args ...string) (string, error) {
	m.CommandRun = name
	m.ArgsRun = args
	return m.ReturnOutput, m.ReturnError
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
}

func TestLocalFrontendFilesWithGit(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", "<h1>Hello</h1>")
	writeTestFile(t, dir, "app.jsx", "export default App")
	writeTestFile(t, dir, "ignored.css", "body {}")

	mockRunner := &MockRunner{
		// ignored.css deliberately missing: git enumeration wins over the walk
		ReturnOutput: "index.html\napp.jsx\nREADME.md",
	}

	local := &Local{path: dir, runner: mockRunner}

	files, err := local.FrontendFiles(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if mockRunner.CommandRun != "git" {
		t.Errorf("Expected command 'git', got %s", mockRunner.CommandRun)
	}
	if len(mockRunner.ArgsRun) != 1 || mockRunner.ArgsRun[0] != "ls-files" {
		t.Errorf("Expected arguments ['ls-files'], got %v", mockRunner.ArgsRun)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Path != "index.html" || files[0].Content != "<h1>Hello</h1>" {
		t.Errorf("Unexpected first file: %+v", files[0])
	}
	if files[1].Type != ".jsx" {
		t.Errorf("Expected type .jsx, got %s", files[1].Type)
	}
}

func TestLocalFrontendFilesWalkFallback(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", "<h1>Hello</h1>")
	writeTestFile(t, dir, filepath.Join("src", "main.py"), "print('hi')")
	writeTestFile(t, dir, "notes.txt", "not frontend")
	writeTestFile(t, dir, filepath.Join(".git", "config"), "[core]")

	local := &Local{
		path:   dir,
		runner: &MockRunner{ReturnError: errors.New("not a git repository")},
	}

	files, err := local.FrontendFiles(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	for _, f := range files {
		if strings.HasSuffix(f.Path, ".txt") {
			t.Errorf("Non-frontend file collected: %s", f.Path)
		}
		if strings.HasPrefix(f.Path, ".git") {
			t.Errorf(".git contents should be skipped, got %s", f.Path)
		}
	}
}

func TestLocalFrontendFilesCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "index.html", "<h1>Hello</h1>")

	local := &Local{
		path:   dir,
		runner: &MockRunner{ReturnOutput: "index.html"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := local.FrontendFiles(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLocalFrontendFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "notes.txt", "nothing frontend here")

	local := &Local{
		path:   dir,
		runner: &MockRunner{ReturnError: errors.New("not a git repository")},
	}

	if _, err := local.FrontendFiles(context.Background()); err == nil {
		t.Error("Expected error when no frontend files are found")
	}
}

func TestNewLocalValidatesPath(t *testing.T) {
	if _, err := NewLocal(); err == nil {
		t.Error("Expected error when path option is missing")
	}

	if _, err := NewLocal(WithPath(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Error("Expected error for nonexistent directory")
	}
}

func TestLocalInfo(t *testing.T) {
	dir := t.TempDir()

	local, err := NewLocal(WithPath(dir))
	if err != nil {
		t.Fatalf("Failed to create local extractor: %v", err)
	}

	info, err := local.Info(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if info.Name != filepath.Base(dir) {
		t.Errorf("Expected name %s, got %s", filepath.Base(dir), info.Name)
	}
}
