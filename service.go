package bankchunk

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes the statement file a result came from.
type FileInfo struct {
	// Path is the statement file path as given.
	Path string `json:"file_path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Type is the lowercase file extension without the dot.
	Type string `json:"type"`

	// NumChunks is the number of chunks produced.
	NumChunks int `json:"num_chunks"`
}

// ServiceResult pairs a processing result with information about its file.
type ServiceResult struct {
	ProcessingResult
	FileInfo FileInfo `json:"file_info"`
}

// GetChunks returns the result's chunks.
func (r *ServiceResult) GetChunks() []string {
	return r.Chunks
}

// GetMetadata returns the result's statement metadata as key/value lines.
func (r *ServiceResult) GetMetadata() []string {
	return r.Metadata.Lines()
}

// UsedFallback reports whether the plain-text fallback produced the chunks.
func (r *ServiceResult) UsedFallback() bool {
	return r.FallbackUsed
}

// Service processes statement files with shared configuration and logging.
type Service struct {
	chunkSize int
	overlap   int
	logger    *slog.Logger
}

// NewService creates a service. A nil logger falls back to slog.Default.
func NewService(chunkSize, overlap int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		chunkSize: chunkSize,
		overlap:   overlap,
		logger:    logger,
	}
}

// ProcessFile processes one statement file.
func (s *Service) ProcessFile(path string) (*ServiceResult, error) {
	s.logger.Info("processing statement", "file", path)

	result, warnings, err := Open(path).
		ChunkSize(s.chunkSize).
		Overlap(s.overlap).
		Process()
	if err != nil {
		s.logger.Error("processing failed", "file", path, "error", err)
		return nil, err
	}
	for _, w := range warnings {
		s.logger.Warn("processing warning", "file", path, "stage", w.Stage, "message", w.Message)
	}

	info := FileInfo{
		Path:      path,
		Type:      strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		NumChunks: len(result.Chunks),
	}
	if stat, err := os.Stat(path); err == nil {
		info.Size = stat.Size()
	}

	s.logger.Info("processing complete",
		"file", path,
		"chunks", len(result.Chunks),
		"fallback", result.FallbackUsed)

	return &ServiceResult{
		ProcessingResult: *result,
		FileInfo:         info,
	}, nil
}

// BatchItem is the outcome for one file of a batch.
type BatchItem struct {
	// Path is the statement file path.
	Path string `json:"file_path"`

	// Result is nil when processing failed.
	Result *ServiceResult `json:"result,omitempty"`

	// Err holds the failure message, empty on success.
	Err string `json:"error,omitempty"`
}

// BatchProcess processes files in order. Failures are recorded per file and
// do not stop the batch; the returned error is non-nil only when every file
// failed.
func (s *Service) BatchProcess(paths []string) ([]BatchItem, error) {
	items := make([]BatchItem, 0, len(paths))
	failures := 0
	for _, path := range paths {
		item := BatchItem{Path: path}
		result, err := s.ProcessFile(path)
		if err != nil {
			item.Err = err.Error()
			failures++
		} else {
			item.Result = result
		}
		items = append(items, item)
	}
	if len(paths) > 0 && failures == len(paths) {
		return items, fmt.Errorf("all %d files failed", failures)
	}
	return items, nil
}
