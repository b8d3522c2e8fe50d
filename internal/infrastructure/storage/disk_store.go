package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

// DiskStore grava avatares no disco local. Usado em desenvolvimento;
// os arquivos são servidos pela própria API em /avatars.
type DiskStore struct {
	dataDir       string
	publicBaseURL string
}

// NewDiskStore cria o diretório de dados se necessário
func NewDiskStore(dataDir, publicBaseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
	}

	return &DiskStore{
		dataDir:       dataDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

var _ ports.AvatarStorage = (*DiskStore)(nil)

// Upload grava o arquivo com temp + fsync + rename atômico
func (s *DiskStore) Upload(ctx context.Context, key valueobjects.AvatarKey, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath, err := s.fullPath(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("failed to create avatar dir: %w", err)
	}

	tmpPath := fullPath + ".tmp"
	f, err := os.Create(tmpPath) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to sync avatar: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close avatar: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to rename avatar: %w", err)
	}

	return s.publicBaseURL + "/" + key.String(), nil
}

// Delete remove o arquivo; retorna nil se ele já não existir
func (s *DiskStore) Delete(ctx context.Context, key valueobjects.AvatarKey) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath, err := s.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete avatar %s: %w", key, err)
	}
	return nil
}

func (s *DiskStore) KeyFromURL(rawURL string) (valueobjects.AvatarKey, error) {
	return valueobjects.AvatarKeyFromURL(s.publicBaseURL, rawURL)
}

// DataDir retorna o diretório servido em /avatars
func (s *DiskStore) DataDir() string {
	return s.dataDir
}

// fullPath impede que a chave escape do diretório de dados
func (s *DiskStore) fullPath(key valueobjects.AvatarKey) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key.String()))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid avatar key %q", key)
	}
	return filepath.Join(s.dataDir, clean), nil
}
