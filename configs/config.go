package configs

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is built once in main and
// passed down explicitly; nothing in the tree reaches for a global.
type Config struct {
	Port      string
	JWTSecret string

	// mysql or memory
	StorageDriver string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDB       string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from .env and the environment.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("SOCIAL_PORT", "8080")
	viper.SetDefault("SOCIAL_JWT_SECRET", "secret")
	viper.SetDefault("SOCIAL_STORAGE_DRIVER", "mysql")
	viper.SetDefault("MYSQL_USER", "root")
	viper.SetDefault("MYSQL_PASSWORD", "password")
	viper.SetDefault("MYSQL_HOST", "localhost")
	viper.SetDefault("MYSQL_PORT", "3306")
	viper.SetDefault("MYSQL_DB", "social")
	viper.SetDefault("MINIO_ENDPOINT", "")
	viper.SetDefault("MINIO_ACCESS_KEY", "")
	viper.SetDefault("MINIO_SECRET_KEY", "")
	viper.SetDefault("MINIO_BUCKET", "social-media")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "social-activity")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Error reading .env file: %v", err)
		log.Printf("Using environment variables and defaults")
	}

	var brokers []string
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			brokers = append(brokers, strings.TrimSpace(broker))
		}
	}

	return &Config{
		Port:           viper.GetString("SOCIAL_PORT"),
		JWTSecret:      viper.GetString("SOCIAL_JWT_SECRET"),
		StorageDriver:  viper.GetString("SOCIAL_STORAGE_DRIVER"),
		MySQLUser:      viper.GetString("MYSQL_USER"),
		MySQLPassword:  viper.GetString("MYSQL_PASSWORD"),
		MySQLHost:      viper.GetString("MYSQL_HOST"),
		MySQLPort:      viper.GetString("MYSQL_PORT"),
		MySQLDB:        viper.GetString("MYSQL_DB"),
		MinIOEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinIOBucket:    viper.GetString("MINIO_BUCKET"),
		KafkaBrokers:   brokers,
		KafkaTopic:     viper.GetString("KAFKA_TOPIC"),
	}
}
