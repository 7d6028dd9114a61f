package lexicon

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/domino14/doublets/cache"
	"github.com/domino14/doublets/config"
)

const (
	CacheKeyPrefix = "lexicon:"
	FileExtension  = ".txt"
)

// CacheLoadFunc is the function that loads a lexicon into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	name := strings.TrimPrefix(key, CacheKeyPrefix)
	return Load(filepath.Join(cfg.GetString(config.ConfigLexiconPath), name+FileExtension))
}

// Get loads a named lexicon from the cache, or from
// <lexicon-path>/<name>.txt the first time it is asked for.
func Get(cfg *config.Config, name string) (*Lexicon, error) {
	key := CacheKeyPrefix + name
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Lexicon)
	if !ok {
		return nil, errors.New("could not read lexicon from cache")
	}
	return ret, nil
}
