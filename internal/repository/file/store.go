package file

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

// VersionAbsent is the collection version before the backing file exists.
// A writer that read an empty bootstrap collection presents it as the
// expected version.
const VersionAbsent = "0"

// Store persists each collection as one whole-file JSON document. A write is
// staged to a temp file and renamed into place, so a concurrent reader sees
// either the fully-old or the fully-new content. Consistency across separate
// read-modify-write cycles is last-writer-wins unless the caller opts into
// version checking.
type Store struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewStore(fsys afero.Fs, dir string, logger *zap.Logger) *Store {
	return &Store{
		fs:     fsys,
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.RWMutex),
	}
}

func (s *Store) lock(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

// Read returns the raw document bytes and the collection version. An absent
// file is the first-run bootstrap case: nil bytes, VersionAbsent, no error.
func (s *Store) Read(name string) ([]byte, string, error) {
	l := s.lock(name)
	l.RLock()
	defer l.RUnlock()

	return s.readLocked(name)
}

func (s *Store) readLocked(name string) ([]byte, string, error) {
	path := filepath.Join(s.dir, name)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, VersionAbsent, nil
		}
		s.logger.Error("Failed to read collection document",
			zap.String("collection", name),
			zap.Error(err))
		return nil, "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": name,
			"cause":      err.Error(),
		})
	}

	return data, Version(data), nil
}

// Write replaces the document with data. When expectedVersion is non-empty
// it must match the stored version or the write fails with
// COLLECTION_CONFLICT and the document is untouched. Returns the new
// version.
func (s *Store) Write(name string, data []byte, expectedVersion string) (string, error) {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	if expectedVersion != "" {
		_, current, err := s.readLocked(name)
		if err != nil {
			return "", err
		}
		if current != expectedVersion {
			return "", apperrors.ErrCollectionConflict.WithDetails(map[string]interface{}{
				"collection": name,
				"expected":   expectedVersion,
				"current":    current,
			})
		}
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": name,
			"cause":      err.Error(),
		})
	}

	path := filepath.Join(s.dir, name)
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())

	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		s.logger.Error("Failed to stage collection document",
			zap.String("collection", name),
			zap.Error(err))
		return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": name,
			"cause":      err.Error(),
		})
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		// Some backing filesystems refuse to rename over an existing file.
		if rmErr := s.fs.Remove(path); rmErr == nil {
			err = s.fs.Rename(tmp, path)
		}
		if err != nil {
			_ = s.fs.Remove(tmp)
			s.logger.Error("Failed to replace collection document",
				zap.String("collection", name),
				zap.Error(err))
			return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
				"collection": name,
				"cause":      err.Error(),
			})
		}
	}

	s.logger.Debug("Collection document replaced",
		zap.String("collection", name),
		zap.Int("bytes", len(data)))
	return Version(data), nil
}

// Version is the strong identity of a stored document: hex sha256 of its
// exact bytes. Surfaced to clients as the collection ETag.
func Version(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
