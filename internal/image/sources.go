// Package image resolves the installable image artifacts offered to the
// operator: the default system image, a freshly generated config template,
// preconfigured files shipped with the system, and files lying in the
// current directory.
package image

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/obsidianos/obsidian-wizard/internal/config"
	"github.com/obsidianos/obsidian-wizard/internal/logging"
)

// Kind tags the provenance of an image source. Menu options are built from
// typed sources and never re-parsed from their display text.
type Kind int

const (
	// KindNewConfig generates a config template and opens it in an editor.
	KindNewConfig Kind = iota
	// KindDefaultImage is the system image shipped on the install medium.
	KindDefaultImage
	// KindPreconfigured is a .mkobsfs/.sfs file from the system preconf dir.
	KindPreconfigured
	// KindLocalFile is a .mkobsfs/.sfs file from the working directory.
	KindLocalFile
)

// Source is one selectable image artifact. Path is empty for KindNewConfig
// until Materialize resolves it.
type Source struct {
	Kind Kind
	Path string
}

// Label renders the source for menu display.
func (s Source) Label() string {
	switch s.Kind {
	case KindNewConfig:
		return "Make a new config"
	case KindDefaultImage:
		return fmt.Sprintf("Default System Image (%s)", s.Path)
	case KindPreconfigured:
		name := filepath.Base(s.Path)
		return strings.TrimSuffix(name, filepath.Ext(name))
	default:
		return s.Path
	}
}

// imageExtensions are the artifact types the wizard offers.
var imageExtensions = []string{".mkobsfs", ".sfs"}

func hasImageExt(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Sources merges the provenance tiers in fixed order:
//  1. "Make a new config" (always offered, always first)
//  2. the default system image, only when it is actually present
//  3. preconfigured files under the system preconf directory, sorted
//  4. files with the same extensions in workDir
func Sources(cfg *config.Settings, workDir string) []Source {
	sources := []Source{{Kind: KindNewConfig}}

	if _, err := os.Stat(cfg.DefaultImg); err == nil {
		sources = append(sources, Source{Kind: KindDefaultImage, Path: cfg.DefaultImg})
	}

	sources = append(sources, scanDir(cfg.PreconfDir, KindPreconfigured)...)
	sources = append(sources, scanDir(workDir, KindLocalFile)...)

	logging.Debug("image source discovery",
		zap.Int("count", len(sources)),
		zap.String("preconf_dir", cfg.PreconfDir),
		zap.String("work_dir", workDir),
	)
	return sources
}

func scanDir(dir string, kind Kind) []Source {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var found []Source
	for _, e := range entries {
		if e.IsDir() || !hasImageExt(e.Name()) {
			continue
		}
		found = append(found, Source{Kind: kind, Path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found
}

// TemplatePath is where a generated config is written.
func TemplatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, "config.mkobsfs"), nil
}

// Materialize resolves a source to a concrete filesystem path. For
// KindNewConfig it writes the fixed template and launches the configured
// editor synchronously; the path is returned whether or not the user edited
// anything, and the content is never validated here.
func (s Source) Materialize(cfg *config.Settings) (string, error) {
	if s.Kind != KindNewConfig {
		return s.Path, nil
	}

	path, err := TemplatePath()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write config template: %w", err)
	}

	logging.Info("launching editor",
		zap.String("editor", cfg.Editor),
		zap.String("path", path),
	)

	cmd := exec.Command(cfg.Editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %s failed: %w", cfg.Editor, err)
	}

	return path, nil
}
