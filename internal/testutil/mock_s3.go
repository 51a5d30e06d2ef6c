package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/s3"
)

// MockStorageService implements s3.Service against an in-memory map.
type MockStorageService struct {
	mu      sync.RWMutex
	objects map[string]*s3.Object

	// PublicBaseURL mirrors the storage config; empty forces the
	// presigned-url fallback.
	PublicBaseURL string
	UploadErr     error
}

func NewMockStorageService() *MockStorageService {
	return &MockStorageService{
		objects:       make(map[string]*s3.Object),
		PublicBaseURL: "https://storage.test",
	}
}

func (m *MockStorageService) Upload(ctx context.Context, object *s3.Object) error {
	if m.UploadErr != nil {
		return m.UploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[object.Path] = object
	return nil
}

func (m *MockStorageService) GetPresignedUrl(ctx context.Context, path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[path]; !ok {
		return "", ierr.NewError("object not found").
			WithHint("No object stored at path").
			Mark(ierr.ErrNotFound)
	}
	return fmt.Sprintf("https://storage.test/presigned/%s", path), nil
}

func (m *MockStorageService) PublicURL(path string) string {
	if m.PublicBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(m.PublicBaseURL, "/"), path)
}

func (m *MockStorageService) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[path]
	return ok, nil
}

// GetObject returns the stored object for assertions.
func (m *MockStorageService) GetObject(path string) *s3.Object {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objects[path]
}

func (m *MockStorageService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = make(map[string]*s3.Object)
	m.UploadErr = nil
}
