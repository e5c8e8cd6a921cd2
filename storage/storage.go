// Package storage uploads phone photos to an object bucket and removes them
// again when the listing goes away.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/princinho/resalebackend/config"
	"github.com/princinho/resalebackend/models"
	"github.com/princinho/resalebackend/utils"
)

type ImageStore interface {
	Put(ctx context.Context, objectName, contentType string, body io.Reader) (publicURL string, err error)
	Delete(ctx context.Context, objectNames []string) error
}

// New builds the store selected by cfg.Driver. It returns nil, nil when
// uploads are disabled.
func New(ctx context.Context, cfg config.StorageConfig) (ImageStore, error) {
	switch cfg.Driver {
	case "":
		return nil, nil
	case "r2", "s3":
		s, err := NewR2Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "gcs":
		s, err := NewGCSStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Driver)
	}
}

// UploadPhoneImages validates and stores each file under phones/<phoneID>/.
// Objects already written are removed if a later file fails.
func UploadPhoneImages(ctx context.Context, store ImageStore, v *FileValidator, phoneID string, files []*multipart.FileHeader) ([]models.PhoneImage, error) {
	if store == nil {
		return nil, utils.ErrStorageDisabled
	}
	images := make([]models.PhoneImage, 0, len(files))
	written := make([]string, 0, len(files))
	for _, fh := range files {
		img, err := uploadOne(ctx, store, v, phoneID, fh)
		if err != nil {
			_ = store.Delete(ctx, written)
			return nil, err
		}
		written = append(written, img.ObjectName)
		images = append(images, img)
	}
	return images, nil
}

func uploadOne(ctx context.Context, store ImageStore, v *FileValidator, phoneID string, fh *multipart.FileHeader) (models.PhoneImage, error) {
	mimeType, err := v.ValidateFile(fh)
	if err != nil {
		return models.PhoneImage{}, fmt.Errorf("%s: %v: %w", fh.Filename, err, utils.ErrBadRequest)
	}
	f, err := fh.Open()
	if err != nil {
		return models.PhoneImage{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectName := fmt.Sprintf("phones/%s/%d-%s%s", phoneID, time.Now().UTC().Unix(), uuid.NewString(), ext)
	url, err := store.Put(ctx, objectName, mimeType, f)
	if err != nil {
		return models.PhoneImage{}, fmt.Errorf("upload %s: %w", fh.Filename, err)
	}
	return models.PhoneImage{URL: url, ObjectName: objectName, MimeType: mimeType, SizeBytes: fh.Size}, nil
}

type FileValidator struct {
	allowedExt  map[string]bool
	allowedMime map[string]bool
	maxSize     int64
}

func NewFileValidator(cfg config.StorageConfig) *FileValidator {
	v := &FileValidator{
		allowedExt:  map[string]bool{},
		allowedMime: map[string]bool{},
		maxSize:     int64(cfg.MaxUploadSizeMB) << 20,
	}
	for _, ext := range cfg.AllowedExt {
		v.allowedExt[strings.ToLower(ext)] = true
	}
	for _, m := range cfg.AllowedMime {
		v.allowedMime[strings.ToLower(m)] = true
	}
	return v
}

// ValidateFile checks size, extension and sniffed content type, returning
// the detected MIME type.
func (v *FileValidator) ValidateFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", fmt.Errorf("file too large (max %d MB)", v.maxSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !v.allowedExt[ext] {
		return "", fmt.Errorf("invalid file extension")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file header")
	}

	detectedMime := strings.ToLower(http.DetectContentType(buffer[:n]))
	if !v.allowedMime[detectedMime] {
		return "", fmt.Errorf("invalid file type")
	}
	return detectedMime, nil
}
