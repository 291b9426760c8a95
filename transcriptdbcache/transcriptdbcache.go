package transcriptdbcache

import (
	"sync"

	nearby "github.com/mcarras/go-nearby"
)

var (
	instance *nearby.TranscriptDBCache
	once     sync.Once
)

func InitCache(dsn string) *nearby.TranscriptDBCache {
	once.Do(func() {
		instance = nearby.NewTranscriptDBCache(dsn)
	})

	return instance
}

func GetInstance() *nearby.TranscriptDBCache {
	return instance
}

func Assemblies() []string {
	return instance.Assemblies()
}

func TranscriptDB(assembly string) (*nearby.TranscriptDB, error) {
	return instance.TranscriptDB(assembly)
}
