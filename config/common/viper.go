package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("no .env file found, relying on environment: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName, listenAddr string) {
	appName = c.Viper.GetString("APP_NAME")
	listenAddr = c.Viper.GetString("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":7720"
	}
	return appName, listenAddr
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort, dbSchema string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")
	dbSchema = c.Viper.GetString("DB_SCHEMA")

	return dbHost, dbUser, dbPassword, dbName, dbPort, dbSchema
}

func (c *Config) GetStorageConfig() (endpoint, bucket, publicBaseURL string) {
	endpoint = c.Viper.GetString("S3_ENDPOINT")
	bucket = c.Viper.GetString("S3_BUCKET")
	publicBaseURL = c.Viper.GetString("S3_PUBLIC_BASE_URL")
	return endpoint, bucket, publicBaseURL
}

func (c *Config) GetRedisHost() string {
	return c.Viper.GetString("REDIS_HOST")
}
