package routes

import (
	"errors"

	dnaroutes "github.com/antonybholmes/go-dna/routes"
	basemath "github.com/antonybholmes/go-math"
	"github.com/antonybholmes/go-sys/log"
	"github.com/antonybholmes/go-web"
	"github.com/gin-gonic/gin"

	nearby "github.com/mcarras/go-nearby"
	"github.com/mcarras/go-nearby/transcriptdbcache"
)

const (
	DefaultLimit int = 10

	// limit amount of data returned per request
	MaxLocations int = 100
)

var ErrLocationCannotBeEmpty = errors.New("location cannot be empty")

// NearbyTranscriptsRoute finds the transcripts upstream and downstream of
// each posted location in the requested assembly.
func NearbyTranscriptsRoute(c *gin.Context) {
	locations, err := dnaroutes.ParseLocationsFromPost(c)

	if err != nil {
		c.Error(err)
		return
	}

	if len(locations) == 0 {
		web.BadReqResp(c, ErrLocationCannotBeEmpty)
		return
	}

	locations = locations[0:basemath.Min(len(locations), MaxLocations)]

	db, err := transcriptdbcache.TranscriptDB(c.Param("assembly"))

	if err != nil {
		web.BadReqResp(c, err)
		return
	}

	limit := web.ParseNumParam(c, "limit", DefaultLimit)

	log.Debug().Msgf("querying nearby transcripts for %d locations", len(locations))

	data := make([]*nearby.NearbyTranscripts, len(locations))

	for li, location := range locations {
		transcripts, err := db.NearbyTranscripts(location, uint16(limit))

		if err != nil {
			c.Error(err)
			return
		}

		data[li] = transcripts
	}

	web.MakeDataResp(c, "", &data)
}

// AssembliesRoute lists the assemblies the service accepts.
func AssembliesRoute(c *gin.Context) {
	web.MakeDataResp(c, "", transcriptdbcache.Assemblies())
}
