package bankchunk

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_ProcessFile(t *testing.T) {
	path := writeStatement(t, "statement.csv", csvStatement)

	svc := NewService(5, 0, quietLogger())
	result, err := svc.ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.FileInfo.Path != path {
		t.Errorf("FileInfo.Path = %q", result.FileInfo.Path)
	}
	if result.FileInfo.Type != "csv" {
		t.Errorf("FileInfo.Type = %q, want csv", result.FileInfo.Type)
	}
	if result.FileInfo.Size == 0 {
		t.Error("FileInfo.Size = 0")
	}
	if result.FileInfo.NumChunks != len(result.Chunks) {
		t.Errorf("NumChunks = %d, chunks = %d", result.FileInfo.NumChunks, len(result.Chunks))
	}
	if len(result.GetChunks()) != len(result.Chunks) {
		t.Error("GetChunks() disagrees with Chunks")
	}
	if len(result.GetMetadata()) != 2 {
		t.Errorf("GetMetadata() = %v", result.GetMetadata())
	}
	if result.UsedFallback() {
		t.Error("UsedFallback() = true, want false")
	}
}

func TestService_BatchProcess(t *testing.T) {
	good := writeStatement(t, "good.csv", csvStatement)
	bad := filepath.Join(t.TempDir(), "missing.csv")

	svc := NewService(5, 0, quietLogger())
	items, err := svc.BatchProcess([]string{good, bad})
	if err != nil {
		t.Fatalf("BatchProcess() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Result == nil || items[0].Err != "" {
		t.Errorf("good file item = %+v", items[0])
	}
	if items[1].Result != nil || items[1].Err == "" {
		t.Errorf("missing file item = %+v", items[1])
	}
}

func TestService_BatchProcess_AllFail(t *testing.T) {
	svc := NewService(5, 0, quietLogger())
	items, err := svc.BatchProcess([]string{
		filepath.Join(t.TempDir(), "a.csv"),
		filepath.Join(t.TempDir(), "b.csv"),
	})
	if err == nil {
		t.Error("expected error when every file fails")
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
}

func TestNewService_NilLogger(t *testing.T) {
	svc := NewService(5, 0, nil)
	if svc.logger == nil {
		t.Error("logger not defaulted")
	}
}
