package modelhub

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const ManifestFile = "manifest.json"

type FileEntry struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest records a completed snapshot of a model repository.
type Manifest struct {
	Repository   string      `json:"repository"`
	Revision     string      `json:"revision"`
	DownloadedAt time.Time   `json:"downloaded_at"`
	Files        []FileEntry `json:"files"`
}

func readManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func writeManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(dir, ManifestFile), data)
}

// complete reports whether m describes the wanted snapshot and every file it
// lists is still on disk with the recorded size.
func (m *Manifest) complete(dir, repository, revision string, files []string) bool {
	if m.Repository != repository || m.Revision != revision {
		return false
	}
	recorded := make(map[string]int64, len(m.Files))
	for _, f := range m.Files {
		recorded[f.Path] = f.Size
	}
	for _, name := range files {
		size, ok := recorded[name]
		if !ok {
			return false
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.Size() != size {
			return false
		}
	}
	return true
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
