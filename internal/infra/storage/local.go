package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files under BaseDir and serves them under
// BaseURL + "/uploads". Filenames get a random prefix so repeated
// uploads of the same file never collide.
type Local struct {
	BaseDir string
	BaseURL string
}

func NewLocal(baseDir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Local{BaseDir: baseDir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Store(dir, filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(filepath.Join(l.BaseDir, dir), 0o755); err != nil {
		return "", err
	}

	name := randomPrefix() + "_" + filepath.Base(filename)
	path := filepath.Join(l.BaseDir, dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", l.BaseURL, dir, name), nil
}

func (l *Local) Delete(url string) error {
	marker := "/uploads/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return fmt.Errorf("not a managed url: %s", url)
	}
	rel := url[idx+len(marker):]
	if strings.Contains(rel, "..") {
		return fmt.Errorf("invalid path: %s", rel)
	}
	return os.Remove(filepath.Join(l.BaseDir, filepath.FromSlash(rel)))
}

func randomPrefix() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
