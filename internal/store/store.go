package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"storymap-cli/internal/model"
)

const (
	storyFileName  = "story.yaml"
	sqliteFileName = "state.sqlite"
)

// Store is a workspace directory holding the story file and the params db.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a .storymap workspace.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".storymap")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".storymap"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) storyPath() string {
	return filepath.Join(s.Dir, storyFileName)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

// StoryPath exposes the story file location (watched by `serve`).
func (s Store) StoryPath() string { return s.storyPath() }

// ErrNoStory is returned by Load when the workspace has no story file yet.
var ErrNoStory = errors.New("no story file in workspace")

func (s Store) Load() (*model.Story, error) {
	b, err := os.ReadFile(s.storyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoStory
		}
		return nil, fmt.Errorf("read story: %w", err)
	}
	var story model.Story
	if err := yaml.Unmarshal(b, &story); err != nil {
		return nil, fmt.Errorf("parse %s: %w", storyFileName, err)
	}
	return &story, nil
}

// Save writes the story atomically (temp file + rename) so a crashed write
// never leaves a half-written story behind.
func (s Store) Save(story *model.Story) error {
	if story == nil {
		return errors.New("nil story")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	b, err := yaml.Marshal(story)
	if err != nil {
		return fmt.Errorf("encode story: %w", err)
	}
	tmp, err := os.CreateTemp(s.Dir, storyFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.storyPath()); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
