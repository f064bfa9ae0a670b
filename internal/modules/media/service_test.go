package media

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.MediaItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMediaRepository) GetAll(ctx context.Context) ([]domain.MediaItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaRepository) GetByBusinessType(ctx context.Context, businessType string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, businessType)
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fileHeader builds a real multipart.FileHeader from in-memory content.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

var pngContent = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func countFiles(t *testing.T, dir string) int {
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestService_Upload_Success(t *testing.T) {
	repo := new(MockMediaRepository)
	dir := t.TempDir()
	svc := NewService(repo, dir, "/static/uploads")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MediaItem")).Return(nil)

	item, err := svc.Upload(context.Background(), "admin", fileHeader(t, "lights.png", pngContent),
		[]string{"roofline", "winter"}, []string{"christmas"})

	require.NoError(t, err)
	assert.Equal(t, "image/png", item.MimeType)
	assert.Equal(t, "lights.png", item.OriginalName)
	assert.Equal(t, []string{"roofline", "winter"}, item.Tags)
	assert.Equal(t, []string{"christmas"}, item.BusinessTypes)
	assert.Equal(t, "admin", item.UploadedBy)
	assert.True(t, strings.HasSuffix(item.Filename, ".png"))
	assert.True(t, strings.HasPrefix(item.Filename, fmt.Sprintf("%d/", time.Now().Year())),
		"expected date-sharded path, got %q", item.Filename)
	assert.Equal(t, "/static/uploads/"+item.Filename, item.URL)

	// The file landed under the sharded directory.
	saved, err := os.ReadFile(filepath.Join(dir, item.Filename))
	require.NoError(t, err)
	assert.Equal(t, pngContent, saved)

	repo.AssertExpectations(t)
}

func TestService_Upload_EmptyFile(t *testing.T) {
	repo := new(MockMediaRepository)
	svc := NewService(repo, t.TempDir(), "")

	_, err := svc.Upload(context.Background(), "admin",
		&multipart.FileHeader{Filename: "empty.png", Size: 0}, nil, nil)

	assert.ErrorIs(t, err, ErrEmptyFile)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upload_TooLarge(t *testing.T) {
	repo := new(MockMediaRepository)
	svc := NewService(repo, t.TempDir(), "")

	_, err := svc.Upload(context.Background(), "admin",
		&multipart.FileHeader{Filename: "huge.mp4", Size: MaxFileSize + 1}, nil, nil)

	assert.ErrorIs(t, err, ErrFileTooLarge)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upload_DisallowedMimeType(t *testing.T) {
	repo := new(MockMediaRepository)
	dir := t.TempDir()
	svc := NewService(repo, dir, "")

	_, err := svc.Upload(context.Background(), "admin",
		fileHeader(t, "notes.txt", []byte("installation notes, not an image")), nil, nil)

	assert.ErrorIs(t, err, ErrInvalidMimeType)
	assert.Equal(t, 0, countFiles(t, dir), "rejected upload must not leave files behind")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Upload_RepoFailureRemovesFile(t *testing.T) {
	repo := new(MockMediaRepository)
	dir := t.TempDir()
	svc := NewService(repo, dir, "")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MediaItem")).
		Return(assert.AnError)

	_, err := svc.Upload(context.Background(), "admin", fileHeader(t, "lights.png", pngContent), nil, nil)

	assert.Error(t, err)
	assert.Equal(t, 0, countFiles(t, dir), "failed upload must not leave files behind")
	repo.AssertExpectations(t)
}

func TestService_Delete_RemovesRowAndFile(t *testing.T) {
	repo := new(MockMediaRepository)
	dir := t.TempDir()
	svc := NewService(repo, dir, "")

	rel := "2026/08/29/m-1.png"
	require.NoError(t, os.MkdirAll(filepath.Join(dir, filepath.Dir(rel)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, rel), pngContent, 0644))

	repo.On("GetByID", mock.Anything, "m-1").Return(&domain.MediaItem{ID: "m-1", Filename: rel}, nil)
	repo.On("Delete", mock.Anything, "m-1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "m-1"))

	_, err := os.Stat(filepath.Join(dir, rel))
	assert.True(t, os.IsNotExist(err), "file should be removed after delete")
	repo.AssertExpectations(t)
}

func TestService_Delete_MissingFileStillSucceeds(t *testing.T) {
	repo := new(MockMediaRepository)
	svc := NewService(repo, t.TempDir(), "")

	repo.On("GetByID", mock.Anything, "m-2").
		Return(&domain.MediaItem{ID: "m-2", Filename: "2026/08/29/gone.png"}, nil)
	repo.On("Delete", mock.Anything, "m-2").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "m-2"))
	repo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockMediaRepository)
	svc := NewService(repo, t.TempDir(), "")

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrMediaNotFound)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"roofline", "winter"}, splitCSV("roofline, winter"))
	assert.Equal(t, []string{"christmas"}, splitCSV(" christmas , , "))
}
