package config

import (
	"encoding/json"
	"os"

	"github.com/fkkmemi/boardsync/internal/flagx"
	"github.com/fkkmemi/boardsync/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for the retention field, which
// allows parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	EndpointAddr string `json:"endpoint_addr"`
	DatabaseDSN  string `json:"database_dsn"`
	SecretKey    string `json:"secret_key"`
	AdminEmail   string `json:"admin_email"`

	MirrorURL       string `json:"mirror_url"`
	MirrorUser      string `json:"mirror_user"`
	MirrorPassword  string `json:"mirror_password"`
	MirrorNamespace string `json:"mirror_namespace"`
	MirrorDatabase  string `json:"mirror_database"`

	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`

	SearchAppID  string `json:"search_app_id"`
	SearchAPIKey string `json:"search_api_key"`
	SearchIndex  string `json:"search_index"`

	TempFileTTL        timex.Duration `json:"temp_file_ttl"`
	TempFileSweepLimit int            `json:"temp_file_sweep_limit"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AdminEmail = c.AdminEmail
	config.MirrorURL = c.MirrorURL
	config.MirrorUser = c.MirrorUser
	config.MirrorPassword = c.MirrorPassword
	config.MirrorNamespace = c.MirrorNamespace
	config.MirrorDatabase = c.MirrorDatabase
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.SearchAppID = c.SearchAppID
	config.SearchAPIKey = c.SearchAPIKey
	config.SearchIndex = c.SearchIndex
	config.TempFileTTL = c.TempFileTTL.Duration
	config.TempFileSweepLimit = c.TempFileSweepLimit
}
