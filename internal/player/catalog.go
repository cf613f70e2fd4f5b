package player

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const videoExt = ".mp4"

// CatalogConfig for the video catalog
type CatalogConfig struct {
	// Root holds one directory per game
	Root string

	// Optional seed for testing
	Seed int64
}

// Catalog lists games and picks their videos.
type Catalog struct {
	root string

	mu     sync.Mutex
	random *rand.Rand
}

// NewCatalog creates a catalog rooted at cfg.Root.
func NewCatalog(cfg *CatalogConfig) (*Catalog, error) {
	if cfg == nil || cfg.Root == "" {
		return nil, errors.New("catalog root cannot be empty")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Catalog{
		root:   cfg.Root,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// Root returns the videos directory.
func (c *Catalog) Root() string {
	return c.root
}

// Games returns the game directory names in sorted order.
func (c *Catalog) Games() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read video root: %w", err)
	}

	var games []string
	for _, e := range entries {
		if e.IsDir() {
			games = append(games, e.Name())
		}
	}
	sort.Strings(games)
	return games, nil
}

// PickVideo returns the path of a random video for game.
func (c *Catalog) PickVideo(game string) (string, error) {
	dir := filepath.Join(c.root, game)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrGameNotFound, game)
		}
		return "", fmt.Errorf("failed to read game directory: %w", err)
	}

	var videos []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), videoExt) {
			videos = append(videos, e.Name())
		}
	}
	if len(videos) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoVideos, game)
	}
	sort.Strings(videos)

	c.mu.Lock()
	pick := videos[c.random.Intn(len(videos))]
	c.mu.Unlock()

	return filepath.Join(dir, pick), nil
}
