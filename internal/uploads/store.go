package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirehub/internship-portal/internal/logger"
)

// MaxResumeSize is the upload cap for resume files.
const MaxResumeSize = 5 << 20 // 5 MiB

// Error variables
var (
	ErrNotPDF   = errors.New("only PDF files are allowed for resume upload")
	ErrTooLarge = errors.New("file size too large, maximum size is 5MB")
)

// Store keeps uploaded resumes on local disk. Files are retained
// indefinitely and served back by static path; the generated name is
// the only access control.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// SaveResume validates the declared media type and size, writes the
// file under a collision-free name, and returns the public URL path.
func (s *Store) SaveResume(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header.Header.Get("Content-Type") != "application/pdf" {
		return "", ErrNotPDF
	}
	if header.Size > MaxResumeSize {
		return "", ErrTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".pdf"
	}
	suffix := strings.Split(uuid.New().String(), "-")[0]
	name := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixMilli(), suffix, ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxResumeSize)); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.Log.Infow("resume stored", "file", name, "size", header.Size)
	return "/uploads/" + name, nil
}
