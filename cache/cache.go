package cache

import (
	"sync"

	"github.com/domino14/doublets/config"
	"github.com/rs/zerolog/log"
)

// The cache holds large read-only objects that are expensive to build,
// such as lexicons, so that the shell (or anything embedding the solver)
// loads each one at most once per process.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course. It exists
// from package init so concurrent first calls to Load share it.
var GlobalObjectCache = newCache()

func newCache() *cache {
	return &cache{objects: make(map[string]any)}
}

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	obj, ok := c.objects[key]
	if !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

// CreateGlobalObjectCache replaces the global cache with an empty one. It
// must not be called while other goroutines are using the cache.
func CreateGlobalObjectCache() {
	GlobalObjectCache = newCache()
}

// Load returns the object cached under name, calling loadFunc to build it
// on the first request. A failed load is not cached.
func Load(cfg *config.Config, name string, loadFunc loadFunc) (any, error) {
	return GlobalObjectCache.get(cfg, name, loadFunc)
}
