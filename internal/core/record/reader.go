package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aki/remocode/internal/core/logger"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrLockTimeout is returned when the shared lock on a snapshot cannot be taken in time
var ErrLockTimeout = errors.New("timeout acquiring snapshot lock")

const lockRetryDelay = 100 * time.Millisecond

// Reader loads snapshots with a shared file lock so a concurrent export is never read half-written
type Reader struct {
	lockTimeout time.Duration
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithLockTimeout sets the maximum wait for the shared lock. Zero or less
// means a single attempt without waiting.
func WithLockTimeout(d time.Duration) ReaderOption {
	return func(r *Reader) {
		r.lockTimeout = d
	}
}

// NewReader creates a snapshot reader
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{
		lockTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads the snapshot at path, logging through the logger carried by
// ctx. A missing file yields an empty snapshot, since no records simply means
// the first code of every format comes next. The file is never created.
func (r *Reader) Load(ctx context.Context, path string) (*Snapshot, error) {
	log := logger.FromContext(ctx).With("path", path)

	// Read-only open: flock's default flags would create a missing file
	lock := flock.New(path, flock.SetFlag(os.O_RDONLY))

	locked, err := r.rlock(ctx, lock)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("snapshot not found, starting empty")
			return &Snapshot{Missing: true, Path: path}, nil
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("snapshot removed while locking, starting empty")
			return &Snapshot{Missing: true, Path: path}, nil
		}
		return nil, err
	}

	snap, err := Decode(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	snap.Path = path

	log.Debug("snapshot loaded", "records", len(snap.Records))
	return snap, nil
}

func (r *Reader) rlock(ctx context.Context, lock *flock.Flock) (bool, error) {
	if r.lockTimeout <= 0 {
		return lock.TryRLock()
	}

	lockCtx, cancel := context.WithTimeout(ctx, r.lockTimeout)
	defer cancel()

	return lock.TryRLockContext(lockCtx, lockRetryDelay)
}

// Encoding is a snapshot file encoding
type Encoding string

const (
	// EncodingYAML is the default snapshot encoding
	EncodingYAML Encoding = "yaml"
	// EncodingJSON is used for .json files
	EncodingJSON Encoding = "json"
)

func formatOf(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return EncodingJSON
	}
	return EncodingYAML
}

// Decode parses snapshot bytes in the given encoding
func Decode(data []byte, enc Encoding) (*Snapshot, error) {
	var snap Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return &snap, nil
	}

	switch enc {
	case EncodingJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, err
		}
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", enc)
	}
	return &snap, nil
}
