package config

import (
	"flag"
	"os"
	"time"

	"github.com/fkkmemi/boardsync/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string             HTTP bind address (e.g., ":8080")
//	-d string             PostgreSQL DSN
//	-s string             ingest token HMAC secret key
//	-admin-email string   email of the designated administrator account
//	-mirror-url string    mirror store RPC URL (e.g., "ws://127.0.0.1:8000/rpc")
//	-mirror-user string   mirror store user
//	-mirror-pass string   mirror store password
//	-mirror-ns string     mirror store namespace
//	-mirror-db string     mirror store database
//	-u string             S3 root user
//	-p string             S3 root password
//	-b string             S3 bucket name
//	-g string             S3 region
//	-e string             S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-search-app string    search index application ID
//	-search-key string    search index API key
//	-search-index string  search index name
//	-gc-ttl int           temp-file retention, minutes
//	-gc-limit int         temp-file sweep batch size
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-admin-email",
		"-mirror-url", "-mirror-user", "-mirror-pass", "-mirror-ns", "-mirror-db",
		"-u", "-p", "-b", "-g", "-e",
		"-search-app", "-search-key", "-search-index",
		"-gc-ttl", "-gc-limit",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.AdminEmail, "admin-email", config.AdminEmail, "administrator account email")

	fs.StringVar(&config.MirrorURL, "mirror-url", config.MirrorURL, "mirror store RPC URL")
	fs.StringVar(&config.MirrorUser, "mirror-user", config.MirrorUser, "mirror store user")
	fs.StringVar(&config.MirrorPassword, "mirror-pass", config.MirrorPassword, "mirror store password")
	fs.StringVar(&config.MirrorNamespace, "mirror-ns", config.MirrorNamespace, "mirror store namespace")
	fs.StringVar(&config.MirrorDatabase, "mirror-db", config.MirrorDatabase, "mirror store database")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.SearchAppID, "search-app", config.SearchAppID, "search index application ID")
	fs.StringVar(&config.SearchAPIKey, "search-key", config.SearchAPIKey, "search index API key")
	fs.StringVar(&config.SearchIndex, "search-index", config.SearchIndex, "search index name")

	tempFileTTL := fs.Int("gc-ttl", int(config.TempFileTTL.Minutes()), "temp file retention (in minutes)")
	fs.IntVar(&config.TempFileSweepLimit, "gc-limit", config.TempFileSweepLimit, "temp file sweep batch size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TempFileTTL = time.Duration(*tempFileTTL) * time.Minute
}
