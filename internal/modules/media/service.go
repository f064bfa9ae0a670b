package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"lightscape/internal/domain"
	"lightscape/internal/repository"
)

const (
	MaxFileSize    = 50 * 1024 * 1024 // 50 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// AllowedMimeTypes defines which file types the media library accepts.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
}

type Repository interface {
	Create(ctx context.Context, item *domain.MediaItem) error
	GetByID(ctx context.Context, id string) (*domain.MediaItem, error)
	GetAll(ctx context.Context) ([]domain.MediaItem, error)
	GetByBusinessType(ctx context.Context, businessType string) ([]domain.MediaItem, error)
	Delete(ctx context.Context, id string) error
}

// Service handles uploads into the shared media library: save file to disk,
// record the row, return ID + URL.
type Service struct {
	repo       Repository
	baseDir    string
	staticBase string
}

func NewService(repo Repository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

// Upload saves a file under a date-sharded directory and records it in the
// media library, tagged with the business variants it applies to.
func (s *Service) Upload(ctx context.Context, uploadedBy string, fileHeader *multipart.FileHeader, tags, businessTypes []string) (*domain.MediaItem, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from the first 512 bytes, not the client header.
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	filename := id + ext
	absPath := filepath.Join(absDir, filename)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	item := &domain.MediaItem{
		ID:            id,
		Filename:      filepath.Join(relDir, filename),
		OriginalName:  fileHeader.Filename,
		MimeType:      mimeType,
		Size:          fileHeader.Size,
		URL:           s.staticBase + "/" + relDir + "/" + filename,
		Tags:          tags,
		BusinessTypes: businessTypes,
		UploadedBy:    uploadedBy,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to record media item: %w", err)
	}
	return item, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.MediaItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByBusinessType(ctx context.Context, businessType string) ([]domain.MediaItem, error) {
	return s.repo.GetByBusinessType(ctx, businessType)
}

// Delete removes the row and then the file. A missing file is logged, not
// fatal: the row is the source of truth.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := os.Remove(filepath.Join(s.baseDir, item.Filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("media_delete_file_failed id=%s path=%s err=%v", id, item.Filename, err)
	}
	return nil
}
