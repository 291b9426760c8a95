// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/antonybholmes/go-sys/log"
	"github.com/spf13/viper"
)

// Defaults are the UCSC public genome browser settings from
// http://genome.ucsc.edu/goldenPath/help/mysql.html (US West Coast
// server, hg19 database) plus the original script's reference point.
const (
	DefaultHost     = "genome-mysql.soe.ucsc.edu"
	DefaultUser     = "genomep"
	DefaultPassword = "password"
	DefaultDatabase = "hg19"

	DefaultChrom = "chr1"
	DefaultPos   = 991973
	DefaultLimit = 10
)

type (
	// ConnConfig is the connection half of the settings: where the
	// transcript database lives and how to authenticate.
	ConnConfig struct {
		Host     string `mapstructure:"host"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Database string `mapstructure:"database"`
	}

	// QueryConfig is the reference point and result limit for one report.
	QueryConfig struct {
		Chrom string `mapstructure:"chrom"`
		Start int    `mapstructure:"start"`
		End   int    `mapstructure:"end"`
		Limit uint16 `mapstructure:"limit"`

		// append the computed distance columns to each table
		Distance bool `mapstructure:"distance"`
	}

	// Config is the root-level settings struct, a mix of settings from
	// the optional settings file and command line arguments.
	Config struct {
		Conn  ConnConfig  `mapstructure:"conn"`
		Query QueryConfig `mapstructure:"query"`
	}
)

// New returns a Config populated from Viper (settings file and/or bound
// command line flags).
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal().Msgf("unable to decode settings: %s", err)
	}

	return &c
}

// DSN builds a go-sql-driver data source name for the configured
// database, e.g. genomep:password@tcp(genome-mysql.soe.ucsc.edu:3306)/hg19.
func (c *ConnConfig) DSN() string {
	return c.dsnFor(c.Database)
}

// DSNTemplate is DSN with a %s placeholder for the database name, for
// callers that serve more than one assembly from the same host.
func (c *ConnConfig) DSNTemplate() string {
	return c.dsnFor("%s")
}

func (c *ConnConfig) dsnFor(database string) string {
	cred := c.User

	if c.Password != "" {
		cred = fmt.Sprintf("%s:%s", c.User, c.Password)
	}

	return fmt.Sprintf("%s@tcp(%s:3306)/%s", cred, c.Host, database)
}
