package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Auth       Auth
	Cloudinary Cloudinary
	Mux        Mux
	Prometheus Prometheus
	Redis      Redis
	CORS       CORS
}

type HTTPServer struct {
	Address string
	Port    int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Auth struct {
	Secret        string
	AdminUsername string
	AdminPassword string
	TokenTTLHours int
}

type Cloudinary struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

type Mux struct {
	TokenID     string
	TokenSecret string
}

type Prometheus struct {
	Address string
	Port    int
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type CORS struct {
	AllowedOrigins []string
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8000)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "portfolio-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "portfolio")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("auth.secret", "")
	viper.SetDefault("auth.admin_username", "")
	viper.SetDefault("auth.admin_password", "")
	viper.SetDefault("auth.token_ttl_hours", 24*7)

	viper.SetDefault("cloudinary.cloud_name", "")
	viper.SetDefault("cloudinary.api_key", "")
	viper.SetDefault("cloudinary.api_secret", "")
	viper.SetDefault("cloudinary.upload_preset", "")

	viper.SetDefault("mux.token_id", "")
	viper.SetDefault("mux.token_secret", "")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address: viper.GetString("http_server.address"),
			Port:    viper.GetInt("http_server.port"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Auth: Auth{
			Secret:        viper.GetString("auth.secret"),
			AdminUsername: viper.GetString("auth.admin_username"),
			AdminPassword: viper.GetString("auth.admin_password"),
			TokenTTLHours: viper.GetInt("auth.token_ttl_hours"),
		},
		Cloudinary: Cloudinary{
			CloudName:    viper.GetString("cloudinary.cloud_name"),
			APIKey:       viper.GetString("cloudinary.api_key"),
			APISecret:    viper.GetString("cloudinary.api_secret"),
			UploadPreset: viper.GetString("cloudinary.upload_preset"),
		},
		Mux: Mux{
			TokenID:     viper.GetString("mux.token_id"),
			TokenSecret: viper.GetString("mux.token_secret"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		CORS: CORS{
			AllowedOrigins: viper.GetStringSlice("cors.allowed_origins"),
		},
	}

	return config
}
