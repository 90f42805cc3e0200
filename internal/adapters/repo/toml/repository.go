package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	CatalogPathKey  = "catalog.path"
	ConfigDir       = ".bella"
	catalogFile     = "catalog.toml"
	catalogFileMode = 0o600
	catalogDirMode  = 0o700
	tempFilePattern = ".catalog-*.toml.tmp"
)

// Repository keeps the service and log catalog in a TOML file. Until the file
// exists the built-in defaults are served, and the first write seeds them.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CatalogRepository = (*Repository)(nil)

func DefaultCatalogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ConfigDir, catalogFile), nil
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(CatalogPathKey)
	if path == "" {
		defaultPath, err := DefaultCatalogPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.read()
}

func (r *Repository) Add(ctx context.Context, entry domain.CatalogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.read()
	if err != nil {
		return err
	}

	entries := entriesOf(&catalog, entry.Kind)
	for _, existing := range *entries {
		if existing.Name == entry.Name {
			return fmt.Errorf("%w: %s %q", domain.ErrEntryExists, entry.Kind, entry.Name)
		}
	}
	*entries = append(*entries, entry)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.write(catalog)
}

func (r *Repository) Remove(ctx context.Context, kind domain.EntryKind, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("unsupported catalog entry kind %q", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.read()
	if err != nil {
		return err
	}

	entries := entriesOf(&catalog, kind)
	kept := make([]domain.CatalogEntry, 0, len(*entries))
	for _, existing := range *entries {
		if existing.Name != name {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(*entries) {
		return fmt.Errorf("%w: %s %q", domain.ErrNotFound, kind, name)
	}
	*entries = kept

	return r.write(catalog)
}

func entriesOf(catalog *domain.Catalog, kind domain.EntryKind) *[]domain.CatalogEntry {
	if kind == domain.EntryKindLog {
		return &catalog.Logs
	}
	return &catalog.Services
}

func (r *Repository) read() (domain.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultCatalog(), nil
		}
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Catalog{}, err
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) write(catalog domain.Catalog) error {
	catalog.Normalize()
	file := toSchema(catalog)

	if err := os.MkdirAll(filepath.Dir(r.path), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false

	return nil
}
