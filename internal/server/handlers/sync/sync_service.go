package sync

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/studiosync/syncserver/internal/server/workspace"
)

// FileStore is the project tree a batch is applied to
type FileStore interface {
	// Checksum returns the digest of the file at relPath, false if there is none
	Checksum(relPath string) (string, bool)
	// Write replaces the file at relPath
	Write(relPath string, content string) error
}

type outcomeKind int

const (
	outcomeUpdated outcomeKind = iota
	outcomeSkipped
	outcomeFailed
)

type fileOutcome struct {
	kind   outcomeKind
	bytes  int
	reason string
}

type SyncService struct {
	store FileStore
}

func NewSyncService(store FileStore) *SyncService {
	return &SyncService{store: store}
}

// Apply processes files strictly in order. A failing file is recorded in the
// result and never stops the batch.
func (s *SyncService) Apply(projectID string, files []SyncFile) *SyncResult {
	start := time.Now()
	batchID := uuid.NewString()

	result := &SyncResult{
		Errors: make([]string, 0),
	}

	var written uint64
	for _, file := range files {
		outcome := s.applyFile(file)
		result.add(outcome)
		if outcome.kind == outcomeUpdated {
			written += uint64(outcome.bytes)
		} else if outcome.kind == outcomeFailed {
			slog.Warn("sync file error", "batch", batchID, "error", outcome.reason)
		}
	}

	slog.Info("sync complete",
		"project", projectID,
		"batch", batchID,
		"files", len(files),
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"written", humanize.Bytes(written),
		"took", time.Since(start),
	)

	return result
}

func (s *SyncService) applyFile(file SyncFile) (outcome fileOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = failed(file.Path, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	// the declared checksum is trusted, the incoming content is not rehashed
	if current, ok := s.store.Checksum(file.Path); ok && current == file.Checksum {
		return fileOutcome{kind: outcomeSkipped}
	}

	if err := s.store.Write(file.Path, file.Content); err != nil {
		return failed(file.Path, err)
	}

	return fileOutcome{kind: outcomeUpdated, bytes: len(file.Content)}
}

func failed(path string, err error) fileOutcome {
	var writeErr *workspace.WriteError
	if errors.As(err, &writeErr) {
		err = writeErr.Err
	}
	return fileOutcome{kind: outcomeFailed, reason: fmt.Sprintf("%s: %v", path, err)}
}

func (r *SyncResult) add(outcome fileOutcome) {
	switch outcome.kind {
	case outcomeUpdated:
		r.Updated++
	case outcomeSkipped:
		r.Skipped++
	case outcomeFailed:
		r.Errors = append(r.Errors, outcome.reason)
	}
}
