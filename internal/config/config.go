package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"notion-roadmap/roadmap/internal/constants"
)

const (
	EnvNotionAPIKey     = "NOTION_API_KEY"
	EnvNotionDatabaseID = "NOTION_DATABASE_ID"

	DefaultNotionBaseURL = "https://api.notion.com/v1"
	DefaultNotionVersion = "2022-06-28"
	DefaultStatus        = "Not Started"
)

type Config struct {
	AppEnv string
	Port   string

	NotionAPIKey     string
	NotionDatabaseID string
	NotionBaseURL    string
	NotionVersion    string
	// NotionIDProperty names a rich text property used to look single items
	// up with a query filter. When empty, items are fetched by page id.
	NotionIDProperty string
	PageSize         int
	HTTPTimeoutSec   int

	DefaultStatus string

	RateLimitRPS   float64
	RateLimitBurst int
}

// MissingVarError reports a required setting that was not provided.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return e.Name + " environment variable is not set"
}

// Load reads configuration from the process environment, after loading a
// .env file from the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		AppEnv: get("APP_ENV", "development"),
		Port:   get("PORT", "8080"),

		NotionAPIKey:     strings.TrimSpace(get(EnvNotionAPIKey, "")),
		NotionDatabaseID: strings.TrimSpace(get(EnvNotionDatabaseID, "")),
		NotionBaseURL:    strings.TrimRight(get("NOTION_API_BASE_URL", DefaultNotionBaseURL), "/"),
		NotionVersion:    get("NOTION_VERSION", DefaultNotionVersion),
		NotionIDProperty: strings.TrimSpace(get("NOTION_ID_PROPERTY", "")),
		PageSize:         getInt(get("NOTION_PAGE_SIZE", ""), constants.MaxPageSize),
		HTTPTimeoutSec:   getInt(get("NOTION_TIMEOUT_SEC", ""), 30),

		DefaultStatus: get("ROADMAP_DEFAULT_STATUS", DefaultStatus),

		RateLimitRPS:   getFloat(get("RATE_LIMIT_RPS", ""), 5),
		RateLimitBurst: getInt(get("RATE_LIMIT_BURST", ""), 10),
	}

	if cfg.PageSize <= 0 || cfg.PageSize > constants.MaxPageSize {
		cfg.PageSize = constants.MaxPageSize
	}
	if strings.TrimSpace(cfg.DefaultStatus) == "" {
		cfg.DefaultStatus = DefaultStatus
	}

	return cfg
}

// Validate checks the settings every upstream call depends on.
func (c Config) Validate() error {
	if c.NotionAPIKey == "" {
		return &MissingVarError{Name: EnvNotionAPIKey}
	}
	if c.NotionDatabaseID == "" {
		return &MissingVarError{Name: EnvNotionDatabaseID}
	}
	return nil
}

// Redacted returns key/value pairs describing the configuration without
// exposing the credential, suitable for structured log fields.
func (c Config) Redacted() []interface{} {
	key := "Not set"
	if c.NotionAPIKey != "" {
		key = "*** (exists)"
	}
	db := c.NotionDatabaseID
	if db == "" {
		db = "Not set"
	}
	return []interface{}{
		"notion_api_key", key,
		"notion_database_id", db,
	}
}

func getInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getFloat(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
