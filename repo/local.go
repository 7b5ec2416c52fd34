package repo

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/omghumre/ui-generator-agent/logger"
)

// Local implements the Extractor interface for a directory on disk.
// When the directory is a git checkout, file enumeration goes through
// git ls-files so ignored and untracked noise stays out of the prompt;
// otherwise it falls back to a filesystem walk.
type Local struct {
	path   string
	runner Runner
}

// NewLocal creates a new local directory extractor
func NewLocal(opts ...Option) (*Local, error) {
	l := &Local{}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case PathOption:
			if path, ok := opt.Value.(string); ok {
				l.path = path
			}
		}
	}

	if l.path == "" {
		return nil, fmt.Errorf("directory path is required for local extraction")
	}

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory %s: %w", l.path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", l.path)
	}

	l.runner = NewDefaultRunner(l.path)

	return l, nil
}

// Info returns metadata for the local directory; only the name is known
func (l *Local) Info(ctx context.Context) (Info, error) {
	abs, err := filepath.Abs(l.path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	return Info{Name: filepath.Base(abs)}, nil
}

// FrontendFiles collects the frontend files under the directory. The
// context is checked between file reads so a cancelled request does not
// keep scanning a large tree.
func (l *Local) FrontendFiles(ctx context.Context) ([]File, error) {
	paths, err := l.listFiles(ctx)
	if err != nil {
		return nil, err
	}

	files := []File{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(files) >= maxFiles {
			logger.Infof("Reached the %d file limit, stopping extraction", maxFiles)
			break
		}
		if !IsFrontendFile(path) {
			continue
		}

		full := filepath.Join(l.path, path)
		stat, err := os.Stat(full)
		if err != nil {
			logger.Warnf("Couldn't stat %s: %v", path, err)
			continue
		}
		if stat.Size() > maxFileSize {
			logger.Infof("Skipping %s: %s exceeds the %s limit",
				path, humanize.Bytes(uint64(stat.Size())), humanize.Bytes(uint64(maxFileSize)))
			continue
		}

		content, err := os.ReadFile(full)
		if err != nil {
			logger.Warnf("Couldn't read %s: %v", path, err)
			continue
		}

		logger.Debugf("Found: %s", path)
		files = append(files, File{
			Path:    path,
			Content: string(content),
			Type:    fileExtension(path),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no frontend files found in %s", l.path)
	}

	return files, nil
}

// listFiles enumerates candidate files relative to the directory root
func (l *Local) listFiles(ctx context.Context) ([]string, error) {
	if out, err := l.runner.Run("git", "ls-files"); err == nil {
		var paths []string
		for _, line := range strings.Split(out, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				paths = append(paths, line)
			}
		}
		return paths, nil
	}

	logger.Debugf("Not a git checkout, walking %s", l.path)

	var paths []string
	err := filepath.WalkDir(l.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(l.path, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", l.path, err)
	}

	return paths, nil
}
