package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// DiskImageStore keeps uploaded menu images under a single directory served
// statically at /uploads.
type DiskImageStore struct {
	Dir string
}

func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskImageStore{Dir: dir}, nil
}

// Save writes the upload under a unique name derived from the original
// filename plus a timestamp suffix.
func (s *DiskImageStore) Save(originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("file type %s: %w", ext, domain.ErrInvalidInput)
	}

	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	filename := fmt.Sprintf("%s-%d-%d%s", base, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return filename, nil
}

func (s *DiskImageStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	images := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, entry.Name())
		}
	}
	return images, nil
}

// Delete refuses anything that escapes the uploads directory.
func (s *DiskImageStore) Delete(filename string) error {
	path := filepath.Join(s.Dir, filepath.Base(filename))
	if filepath.Base(filename) != filename {
		return fmt.Errorf("filename %q: %w", filename, domain.ErrInvalidInput)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	return os.Remove(path)
}
