package thumbnail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName  = "carousel/thumbnails"
	cacheMaxAge   = 30 * 24 * time.Hour // 30 days
	pruneInterval = 24 * time.Hour
)

// Cache stores rendered thumbnails on disk.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// NewCache creates a cache in dir, or in the XDG cache directory when dir is
// empty.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, cacheDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}

	// Prune old entries in background
	go c.pruneOldEntries()

	return c, nil
}

// cacheKey identifies a rendering of a file version at a box size.
func cacheKey(path string, mtime time.Time, cols, rows int, scale ScaleType) string {
	data := fmt.Sprintf("%s:%d:%d:%d:%s", path, mtime.UnixNano(), cols, rows, scale)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Get returns the cached rendering, or false on a miss.
func (c *Cache) Get(path string, cols, rows int, scale ScaleType) (string, bool) {
	if c == nil {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}

	entry := filepath.Join(c.dir, cacheKey(path, info.ModTime(), cols, rows, scale)+".txt")
	data, err := os.ReadFile(entry)
	if err != nil {
		return "", false
	}

	// Touch the entry so frequently shown images stay fresh.
	now := time.Now()
	_ = os.Chtimes(entry, now, now) //nolint:errcheck // best-effort

	return string(data), true
}

// Put stores a rendering.
func (c *Cache) Put(path string, cols, rows int, scale ScaleType, rendered string) error {
	if c == nil {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	entry := filepath.Join(c.dir, cacheKey(path, info.ModTime(), cols, rows, scale)+".txt")
	return os.WriteFile(entry, []byte(rendered), 0o600)
}

// pruneOldEntries removes cache entries older than cacheMaxAge.
func (c *Cache) pruneOldEntries() {
	if c == nil {
		return
	}

	if time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}

// Renderer renders banner images through an optional disk cache.
type Renderer struct {
	cache *Cache
	scale ScaleType
}

// NewRenderer creates a renderer. cache may be nil.
func NewRenderer(cache *Cache, scale ScaleType) *Renderer {
	return &Renderer{cache: cache, scale: scale}
}

// Render returns the half-block rendering of path in a cols x rows box.
func (r *Renderer) Render(path string, cols, rows int) (string, error) {
	if out, ok := r.cache.Get(path, cols, rows, r.scale); ok {
		return out, nil
	}
	out, err := Render(path, cols, rows, r.scale)
	if err != nil {
		return "", err
	}
	_ = r.cache.Put(path, cols, rows, r.scale, out) //nolint:errcheck // cache is best-effort
	return out, nil
}
