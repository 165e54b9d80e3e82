package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/errors"
	"makerskills-api/core/utils"
)

// Kind selects the extension allow-list applied to an upload field.
type Kind int

const (
	KindImage Kind = iota
	KindVideo
)

// Storage persists uploaded files and returns the public path they are
// served from. Uploads are rejected on extension before any entity
// mutation happens.
type Storage interface {
	// Save stores one file under the given module subdirectory and
	// returns its public path (e.g. /uploads/products/ab12cd.png).
	Save(file *multipart.FileHeader, module string, kind Kind) (string, error)
	// Remove deletes a previously stored file by its public path.
	// Missing files are not an error.
	Remove(publicPath string) error
}

// New picks the backend from configuration; local disk is the default.
func New(cfg config.UploadConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return newLocalStorage(cfg)
	case "s3":
		return newS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Backend)
	}
}

// ValidateExtension enforces the per-kind allow-list. It is exported so
// controllers can reject a whole request before storing anything.
func ValidateExtension(filename string, kind Kind) *errors.AppError {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := constants.AllowedImageExtensions
	msg := "only image files are allowed"
	if kind == KindVideo {
		allowed = constants.AllowedVideoExtensions
		msg = "only video files are allowed"
	}
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrInvalidInput, msg, nil)
}

func randomName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return utils.GenerateFileName(constants.UploadFilenameBytes) + ext
}
