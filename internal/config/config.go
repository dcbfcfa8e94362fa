package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and Redis
// connections, token signing, authentication policy, outgoing mail, background
// workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the portal origins allowed by CORS; "*" allows any
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"landregistry" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the connection used for verification codes, token revocation and login lockout
	Redis struct {
		// URL is the redis:// connection string
		URL string `env:"REDIS_URL" env-default:"redis://localhost:6379/0" yaml:"url"`
		// PoolSize is the maximum number of socket connections
		PoolSize int `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		// MinIdleConns is the minimum number of idle connections kept open
		MinIdleConns int `env:"REDIS_MIN_IDLE_CONNS" env-default:"2" yaml:"minIdleConns"`
		// DialTimeout bounds establishing new connections
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		// ReadTimeout bounds socket reads
		ReadTimeout time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"3s" yaml:"readTimeout"`
		// WriteTimeout bounds socket writes
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" env-default:"3s" yaml:"writeTimeout"`
	} `yaml:"redis"`

	// JWT configures RS256 access tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// Issuer is written to and required in the iss claim
		Issuer string `env:"JWT_ISSUER" env-default:"landregistry" yaml:"issuer"`
		// TTL is the lifetime of access tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
		// TwoFactorTTL is the lifetime of the token issued while a second factor is pending
		TwoFactorTTL time.Duration `env:"JWT_TWO_FACTOR_TTL" env-default:"5m" yaml:"twoFactorTtl"`
	} `yaml:"jwt"`

	// Auth holds the authentication policy
	Auth struct {
		// ResetTokenTTL is how long a password reset link stays valid
		ResetTokenTTL time.Duration `env:"AUTH_RESET_TOKEN_TTL" env-default:"1h" yaml:"resetTokenTtl"`
		// ResetURL is the page the reset link points to; the token is added as a query parameter
		ResetURL string `env:"AUTH_RESET_URL" env-default:"http://localhost:5173/reset-password" yaml:"resetUrl"`
		// OTPTTL is how long an email verification code stays valid
		OTPTTL time.Duration `env:"AUTH_OTP_TTL" env-default:"10m" yaml:"otpTtl"`
		// OTPMaxAttempts is the number of wrong codes after which the code is discarded
		OTPMaxAttempts int `env:"AUTH_OTP_MAX_ATTEMPTS" env-default:"5" yaml:"otpMaxAttempts"`
		// MaxLoginFailures is the number of failed logins that locks an email out
		MaxLoginFailures int `env:"AUTH_MAX_LOGIN_FAILURES" env-default:"5" yaml:"maxLoginFailures"`
		// LockoutDuration is the window failed logins are counted in and the lock length
		LockoutDuration time.Duration `env:"AUTH_LOCKOUT_DURATION" env-default:"15m" yaml:"lockoutDuration"`
		// TOTPIssuer is shown by authenticator apps next to the account
		TOTPIssuer string `env:"AUTH_TOTP_ISSUER" env-default:"Land Management System" yaml:"totpIssuer"`
	} `yaml:"auth"`

	// Mail configures outgoing email. With an empty SMTPHost mails are written to the log.
	Mail struct {
		// SMTPHost is the relay hostname
		SMTPHost string `env:"MAIL_SMTP_HOST" yaml:"smtpHost"`
		// SMTPPort is the relay port
		SMTPPort int `env:"MAIL_SMTP_PORT" env-default:"587" yaml:"smtpPort"`
		// Username for SMTP authentication, empty disables authentication
		Username string `env:"MAIL_USERNAME" yaml:"username"`
		// Password for SMTP authentication
		Password string `env:"MAIL_PASSWORD" yaml:"password"`
		// From is the sender address
		From string `env:"MAIL_FROM" env-default:"no-reply@landsystem.rw" yaml:"from"`
		// RatePerSecond caps the number of mails sent per second across all workers
		RatePerSecond float64 `env:"MAIL_RATE_PER_SECOND" env-default:"5" yaml:"ratePerSecond"`
		// Burst is the number of mails that may be sent at once before the rate applies
		Burst int `env:"MAIL_BURST" env-default:"5" yaml:"burst"`
	} `yaml:"mail"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MailWorkers is the concurrency of the mail queue
		MailWorkers int `env:"WORKER_MAIL_WORKERS" env-default:"5" yaml:"mailWorkers"`
		// ExpirySweepInterval is how often expired documents are archived
		ExpirySweepInterval time.Duration `env:"WORKER_EXPIRY_SWEEP_INTERVAL" env-default:"1h" yaml:"expirySweepInterval"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
