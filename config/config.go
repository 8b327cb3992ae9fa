package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Upload store backends selectable via UPLOAD_BACKEND.
const (
	BackendFilesystem = "fs"
	BackendMinio      = "minio"
	BackendGCS        = "gcs"
)

type Config struct {
	ServerPort int
	RecordsDB  DatabaseConfig
	UsersDB    DatabaseConfig
	Upload     UploadConfig
	Minio      MinioConfig
	GCS        GCSConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	UseSSL   bool
}

// UploadConfig controls profile-picture uploads.
type UploadConfig struct {
	// Backend selects the upload store implementation: fs, minio, or gcs.
	Backend string

	// Root is the directory uploads are written to when Backend is fs.
	Root string

	// MaxBytes is the largest accepted upload size.
	MaxBytes int64

	// AllowedExtensions lists acceptable file extensions without the dot,
	// matched case-insensitively.
	AllowedExtensions []string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	Bucket          string
	ProjectID       string
	CredentialsFile string
}

const defaultMaxUploadBytes = 16 << 20

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	recordsDB := DatabaseConfig{
		Host:     getEnv("RECORDS_DB_HOST", "localhost"),
		Port:     getEnvInt("RECORDS_DB_PORT", 5432),
		User:     getEnv("RECORDS_DB_USER", "peoplebook"),
		Password: getEnv("RECORDS_DB_PASSWORD", "password"),
		DBName:   getEnv("RECORDS_DB_NAME", "people_db"),
		UseSSL:   getEnvBool("RECORDS_DB_SSL", false),
	}

	// The credential store defaults onto the same server as the records
	// database but keeps its own logical database.
	usersDB := DatabaseConfig{
		Host:     getEnv("USERS_DB_HOST", recordsDB.Host),
		Port:     getEnvInt("USERS_DB_PORT", recordsDB.Port),
		User:     getEnv("USERS_DB_USER", recordsDB.User),
		Password: getEnv("USERS_DB_PASSWORD", recordsDB.Password),
		DBName:   getEnv("USERS_DB_NAME", "users_db"),
		UseSSL:   getEnvBool("USERS_DB_SSL", false),
	}

	upload := UploadConfig{
		Backend:           getEnv("UPLOAD_BACKEND", BackendFilesystem),
		Root:              getEnv("UPLOAD_ROOT", "static/images"),
		MaxBytes:          int64(getEnvInt("UPLOAD_MAX_BYTES", defaultMaxUploadBytes)),
		AllowedExtensions: splitList(getEnv("UPLOAD_ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif")),
	}

	minioCfg := MinioConfig{
		Endpoint:  getEnv("MINIO_ENDPOINT", ""),
		AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		SecretKey: getEnv("MINIO_SECRET_KEY", ""),
		Bucket:    getEnv("MINIO_BUCKET", "peoplebook-uploads"),
		UseSSL:    getEnvBool("MINIO_USE_SSL", false),
	}

	gcsCfg := GCSConfig{
		Bucket:          getEnv("GCS_BUCKET", ""),
		ProjectID:       getEnv("GCS_PROJECT_ID", ""),
		CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		RecordsDB:  recordsDB,
		UsersDB:    usersDB,
		Upload:     upload,
		Minio:      minioCfg,
		GCS:        gcsCfg,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(strings.TrimSpace(valueStr)) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}
