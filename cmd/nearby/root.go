// Command nearby finds transcripts near a genomic reference point using
// UCSC's public genome browser MySQL database.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcarras/go-nearby/config"
)

var verbose bool

// rootCmd runs the nearby transcript report when called without any
// subcommands, like the original genomewiki script.
var rootCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Find transcripts upstream and downstream of a genomic reference point",
	Long: `Find the closest transcripts upstream and downstream of a genomic
reference point in the UCSC public genome browser database (refGene set)
and print them as tables, optionally with a computed distance column.`,
	Version:       "0.2.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	RunE: runReport,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Msgf("%s", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	pf := rootCmd.PersistentFlags()

	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.String("host", config.DefaultHost, "MySQL host of the genome database")
	pf.String("user", config.DefaultUser, "MySQL user")
	pf.String("password", config.DefaultPassword, "MySQL password")
	pf.String("database", config.DefaultDatabase, "genome database, e.g. hg19")

	viper.BindPFlag("conn.host", pf.Lookup("host"))
	viper.BindPFlag("conn.user", pf.Lookup("user"))
	viper.BindPFlag("conn.password", pf.Lookup("password"))
	viper.BindPFlag("conn.database", pf.Lookup("database"))

	f := rootCmd.Flags()

	f.String("chrom", config.DefaultChrom, "chromosome of the reference point, e.g. chr1")
	f.Int("start", config.DefaultPos, "start of the reference point")
	f.Int("end", config.DefaultPos, "end of the reference point")
	f.Uint16("limit", config.DefaultLimit, "number of nearby transcripts per direction")
	f.Bool("distance", false, "append a computed distance column to each table")

	viper.BindPFlag("query.chrom", f.Lookup("chrom"))
	viper.BindPFlag("query.start", f.Lookup("start"))
	viper.BindPFlag("query.end", f.Lookup("end"))
	viper.BindPFlag("query.limit", f.Lookup("limit"))
	viper.BindPFlag("query.distance", f.Lookup("distance"))
}

// initSettings layers an optional settings file under the flag values.
func initSettings() {
	viper.SetConfigName("nearby")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Msgf("using settings file %s", viper.ConfigFileUsed())
	}
}
