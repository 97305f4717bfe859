package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey        string `mapstructure:"secret_key"`
		AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
		RefreshTTLDays   int    `mapstructure:"refresh_ttl_days"`
	} `mapstructure:"jwt"`
	Auth struct {
		BcryptCost int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"auth"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("jwt.access_ttl_minutes", 30)
	viper.SetDefault("jwt.refresh_ttl_days", 30)
	viper.SetDefault("auth.bcrypt_cost", 10)

	viper.AutomaticEnv()
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// The config file is optional; environment variables alone are enough
	// for containerized deployments.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	// Running without a signing secret would let anyone forge tokens,
	// so a missing secret is fatal at startup.
	if AppConfig.JWT.SecretKey == "" {
		log.Fatal("JWT secret key is not configured; refusing to start")
	}
}
