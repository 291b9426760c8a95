package nearby

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/antonybholmes/go-sys/log"
)

// UCSC exposes one database per assembly. Users tend to write assemblies
// in gencode form as well, so normalize before keying the cache.
var assemblyNormMap = map[string]string{
	"hg19":   "hg19",
	"grch37": "hg19",
	"hg38":   "hg38",
	"grch38": "hg38",
}

type TranscriptDBCache struct {
	cacheMap map[string]*TranscriptDB
	// DSN template with a %s placeholder for the database name
	dsn string
	mu  sync.Mutex
}

func NewTranscriptDBCache(dsn string) *TranscriptDBCache {
	log.Debug().Msgf("caching transcript databases for %s", dsn)

	return &TranscriptDBCache{dsn: dsn, cacheMap: make(map[string]*TranscriptDB)}
}

// Assemblies lists the assembly names the cache will accept.
func (cache *TranscriptDBCache) Assemblies() []string {
	names := make([]string, 0, len(assemblyNormMap))

	for name := range assemblyNormMap {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (cache *TranscriptDBCache) TranscriptDB(assembly string) (*TranscriptDB, error) {
	name, ok := assemblyNormMap[strings.ToLower(assembly)]

	if !ok {
		return nil, fmt.Errorf("invalid assembly: %s", assembly)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	db, ok := cache.cacheMap[name]

	if !ok {
		var err error

		db, err = NewTranscriptDB(name, fmt.Sprintf(cache.dsn, name))

		if err != nil {
			return nil, err
		}

		cache.cacheMap[name] = db
	}

	return db, nil
}

func (cache *TranscriptDBCache) Close() {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	for _, db := range cache.cacheMap {
		db.Close()
	}
}
