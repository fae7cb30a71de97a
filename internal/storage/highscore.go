package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-dash/internal/game"
)

// DefaultHighScorePath is where the best score lives unless overridden.
const DefaultHighScorePath = "~/.candydash/highestscore.txt"

// FileStore keeps the all-time best score as a decimal integer in a text file.
// It is safe for concurrent use.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

var _ game.HighScoreStore = (*FileStore)(nil)

// NewFileStore returns a store backed by path. A nil logger discards output.
func NewFileStore(path string, logger *log.Logger) (*FileStore, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Path returns the file location.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore reads the best score. A missing, unreadable or corrupt file
// counts as 0 and is rewritten with 0; that recovery is logged, not returned.
func (f *FileStore) LoadHighScore(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err == nil {
		score, perr := strconv.Atoi(strings.TrimSpace(string(data)))
		if perr == nil && score >= 0 {
			return score, nil
		}
		f.logger.Warn("high score file is corrupt, resetting", "path", f.path, "content", strings.TrimSpace(string(data)))
	} else if !errors.Is(err, fs.ErrNotExist) {
		f.logger.Warn("cannot read high score file, resetting", "path", f.path, "err", err)
	}

	if werr := f.write(0); werr != nil {
		f.logger.Error("cannot recreate high score file", "path", f.path, "err", werr)
	}
	return 0, nil
}

// SaveHighScore overwrites the stored best score.
func (f *FileStore) SaveHighScore(ctx context.Context, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(score)
}

// write replaces the file through a temp file so readers never see a torn value.
func (f *FileStore) write(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace high score file: %w", err)
	}
	return nil
}
