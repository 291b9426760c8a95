package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mcarras/go-nearby/config"
	"github.com/mcarras/go-nearby/routes"
	"github.com/mcarras/go-nearby/transcriptdbcache"
)

var addr string

// serveCmd exposes the nearby transcript queries as a JSON service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve nearby transcript queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()

		cache := transcriptdbcache.InitCache(cfg.Conn.DSNTemplate())
		defer cache.Close()

		r := gin.Default()

		v1 := r.Group("/v1")
		v1.GET("/assemblies", routes.AssembliesRoute)
		v1.POST("/nearby/:assembly", routes.NearbyTranscriptsRoute)

		return r.Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}
