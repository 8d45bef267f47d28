package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envAWSRegion             = "REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envGeminiAPIKey          = "GEMINI_API_KEY"
	envGeminiModel           = "GEMINI_MODEL"
	envJWTSecret             = "JWT_SECRET"
	envDownloadURLTimeLimit  = "DOWNLOAD_URL_TIME_LIMIT"
	envPayloadCacheTTL       = "PAYLOAD_CACHE_TTL"
	envRetentionWindow       = "DELETED_IMAGE_RETENTION"
	envMaxUploadSize         = "MAX_UPLOAD_SIZE"
	envMaxProjectsPerUser    = "MAX_PROJECTS_PER_USER"
	envMaxSpacesPerProject   = "MAX_SPACES_PER_PROJECT"
	envMaxImagesPerSpace     = "MAX_IMAGES_PER_SPACE"
	envMaxOperationsPerImage = "MAX_OPERATIONS_PER_IMAGE"
	envMockLimitReached      = "MOCK_LIMIT_REACHED"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 60 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBName             = "designservice"
	defaultDBUser             = "designservice_app"
	defaultDBSSLMode          = "disable"
	defaultDBMaxConns         = 25
	defaultDBMinConns         = 5
	defaultGeminiModel        = "gemini-2.0-flash-exp-image-generation"
	defaultPresignedURLExpiry = 15 * time.Minute
	defaultPayloadCacheTTL    = 30 * time.Minute
	defaultRetentionWindow    = 30 * 24 * time.Hour
	defaultMaxUploadSize      = int64(25 * 1024 * 1024)
	defaultMaxProjects        = 10
	defaultMaxSpaces          = 20
	defaultMaxImages          = 50
	defaultMaxOperations      = 15
	minJWTSecretLength        = 32

	errPortRequiredFmt         = "PORT must be set"
	errDBPasswordRequiredFmt   = "DB_PASSWORD must be set"
	errRegionRequiredFmt       = "REGION must be set"
	errAWSAccessKeyRequiredFmt = "AWS_ACCESS_KEY_ID must be set"
	errAWSSecretKeyRequiredFmt = "AWS_SECRET_ACCESS_KEY must be set"
	errGeminiKeyRequiredFmt    = "GEMINI_API_KEY must be set"
	errJWTSecretRequiredFmt    = "JWT_SECRET must be set"
	errJWTSecretMinLengthFmt   = "JWT_SECRET must be at least %d characters"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AWS      AWSConfig
	Gemini   GeminiConfig
	JWT      JWTConfig
	App      AppConfig
	Limits   LimitsConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type JWTConfig struct {
	Secret string
}

type AppConfig struct {
	PresignedURLExpiry time.Duration
	PayloadCacheTTL    time.Duration
	RetentionWindow    time.Duration
	MaxUploadSize      int64
}

// LimitsConfig holds the advisory maxima for the project/space/image
// hierarchy. MockLimitReached forces every limit check to fail; it exists so
// limit-reached flows can be exercised without creating real data.
type LimitsConfig struct {
	MaxProjectsPerUser    int
	MaxSpacesPerProject   int
	MaxImagesPerSpace     int
	MaxOperationsPerImage int
	MockLimitReached      bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getIntEnv(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getIntEnv(envDBMaxConns, defaultDBMaxConns),
			MinConns: getIntEnv(envDBMinConns, defaultDBMinConns),
		},
		AWS: AWSConfig{
			Region:          os.Getenv(envAWSRegion),
			AccessKeyID:     os.Getenv(envAWSAccessKeyID),
			SecretAccessKey: os.Getenv(envAWSSecretAccessKey),
		},
		Gemini: GeminiConfig{
			APIKey: os.Getenv(envGeminiAPIKey),
			Model:  getEnv(envGeminiModel, defaultGeminiModel),
		},
		JWT: JWTConfig{
			Secret: os.Getenv(envJWTSecret),
		},
		App: AppConfig{
			PresignedURLExpiry: getDurationEnv(envDownloadURLTimeLimit, defaultPresignedURLExpiry),
			PayloadCacheTTL:    getDurationEnv(envPayloadCacheTTL, defaultPayloadCacheTTL),
			RetentionWindow:    getDurationEnv(envRetentionWindow, defaultRetentionWindow),
			MaxUploadSize:      getInt64Env(envMaxUploadSize, defaultMaxUploadSize),
		},
		Limits: LimitsConfig{
			MaxProjectsPerUser:    getIntEnv(envMaxProjectsPerUser, defaultMaxProjects),
			MaxSpacesPerProject:   getIntEnv(envMaxSpacesPerProject, defaultMaxSpaces),
			MaxImagesPerSpace:     getIntEnv(envMaxImagesPerSpace, defaultMaxImages),
			MaxOperationsPerImage: getIntEnv(envMaxOperationsPerImage, defaultMaxOperations),
			MockLimitReached:      getBoolEnv(envMockLimitReached, false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}

	if c.AWS.Region == "" {
		return fmt.Errorf(errRegionRequiredFmt)
	}

	if c.AWS.AccessKeyID == "" {
		return fmt.Errorf(errAWSAccessKeyRequiredFmt)
	}

	if c.AWS.SecretAccessKey == "" {
		return fmt.Errorf(errAWSSecretKeyRequiredFmt)
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf(errGeminiKeyRequiredFmt)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequiredFmt)
	}

	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
