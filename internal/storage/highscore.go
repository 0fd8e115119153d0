package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrNoHighScore = errors.New("no high score stored")

// FileStore keeps the high score as a plain-text integer in a single file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score, or 0 if the file is missing or
// does not hold a non-negative integer.
func (s *FileStore) Load() int32 {
	score, err := s.Read()
	if err != nil {
		if !errors.Is(err, ErrNoHighScore) {
			log.Printf("Storage: ignoring high score file: %v", err)
		}
		return 0
	}
	return score
}

// Read is Load without the fallback.
func (s *FileStore) Read() (int32, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	score, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("parse %s: negative score %d", s.path, score)
	}
	return int32(score), nil
}

// Save overwrites the stored value. The file is replaced atomically so a
// crash mid-write cannot leave a truncated score behind.
func (s *FileStore) Save(score int32) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.FormatInt(int64(score), 10)); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
