package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"makerskills-api/core/config"
	"makerskills-api/core/constants"
	"makerskills-api/core/logger"
)

type localStorage struct {
	baseDir string
}

func newLocalStorage(cfg config.UploadConfig) (Storage, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = constants.UploadBaseDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localStorage{baseDir: dir}, nil
}

func (s *localStorage) Save(file *multipart.FileHeader, module string, kind Kind) (string, error) {
	if appErr := ValidateExtension(file.Filename, kind); appErr != nil {
		return "", appErr
	}

	dir := filepath.Join(s.baseDir, module)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := randomName(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/" + constants.UploadBaseDir + "/" + module + "/" + name, nil
}

func (s *localStorage) Remove(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/"+constants.UploadBaseDir+"/")
	if rel == publicPath || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil && !os.IsNotExist(err) {
		logger.Warn("Storage:Remove", "path", publicPath, "error", err)
		return err
	}
	return nil
}

// BaseDir is used by the server to mount the static /uploads route.
func (s *localStorage) BaseDir() string {
	return s.baseDir
}
