package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It groups the HTTP server, storage backends, crawl budgets and the optional
// language model used as a fallback classifier and country resolver.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Batch crawls answer synchronously, so this must cover RequestTimeout.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"3m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins accepted by the CORS middleware; empty allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"factcrawler" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the crawl result cache connection.
	Redis struct {
		// Addr is host:port of the redis server; empty disables the cache
		Addr string `env:"REDIS_ADDR" env-default:"" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB selects the logical redis database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// TTL is how long a crawl result is served from cache
		TTL time.Duration `env:"REDIS_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"redis"`

	// JWT holds bearer token keys. Tokens carry the tenant ID as subject.
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command to mint tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Crawler bounds every site crawl.
	Crawler struct {
		// MaxPages is the per-site page budget, homepage included
		MaxPages int `env:"CRAWLER_MAX_PAGES" env-default:"7" yaml:"maxPages"`
		// MaxSites caps how many sites one batch call crawls; excess sites are dropped
		MaxSites int `env:"CRAWLER_MAX_SITES" env-default:"10" yaml:"maxSites"`
		// FetchTimeout bounds the wall time of a single page fetch
		FetchTimeout time.Duration `env:"CRAWLER_FETCH_TIMEOUT" env-default:"10s" yaml:"fetchTimeout"`
		// MaxBytes is the largest page body accepted
		MaxBytes int64 `env:"CRAWLER_MAX_BYTES" env-default:"2097152" yaml:"maxBytes"`
		// UserAgent is sent with every fetch
		UserAgent string `env:"CRAWLER_USER_AGENT" env-default:"factcrawler/1.0 (+contact discovery)" yaml:"userAgent"` //nolint: lll
		// PageInterval is the minimum delay between two fetches of the same site; zero disables it
		PageInterval time.Duration `env:"CRAWLER_PAGE_INTERVAL" env-default:"0s" yaml:"pageInterval"`
	} `yaml:"crawler"`

	// PhoneWeights are the priorities assigned to phone candidates per extraction tier.
	PhoneWeights struct {
		TelLink       int `env:"PHONE_WEIGHT_TEL_LINK" env-default:"10" yaml:"telLink"`
		LabelStrong   int `env:"PHONE_WEIGHT_LABEL_STRONG" env-default:"9" yaml:"labelStrong"`
		LabelWeak     int `env:"PHONE_WEIGHT_LABEL_WEAK" env-default:"8" yaml:"labelWeak"`
		Section       int `env:"PHONE_WEIGHT_SECTION" env-default:"8" yaml:"section"`
		IntlFormatted int `env:"PHONE_WEIGHT_INTL_FORMATTED" env-default:"7" yaml:"intlFormatted"`
		IntlBare      int `env:"PHONE_WEIGHT_INTL_BARE" env-default:"5" yaml:"intlBare"`
		Fallback      int `env:"PHONE_WEIGHT_FALLBACK" env-default:"2" yaml:"fallback"`
		// MaxPhones caps the candidates kept per page
		MaxPhones int `env:"PHONE_MAX_PER_PAGE" env-default:"10" yaml:"maxPhones"`
	} `yaml:"phoneWeights"`

	// LLM configures the optional completion service. Without an API key the
	// heuristic strategies are used alone.
	LLM struct {
		// APIKey for the Anthropic API
		APIKey string `env:"LLM_API_KEY" env-default:"" yaml:"apiKey"`
		// Model name passed on every request
		Model string `env:"LLM_MODEL" env-default:"claude-3-5-haiku-latest" yaml:"model"`
		// MaxTokens bounds the completion length
		MaxTokens int64 `env:"LLM_MAX_TOKENS" env-default:"256" yaml:"maxTokens"`
		// Timeout bounds a single completion call
		Timeout time.Duration `env:"LLM_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"llm"`

	// Worker configures asynchronous crawl jobs.
	Worker struct {
		// MaxWorkers is the number of crawl jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a crawl job is tried before it is discarded
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"30s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
