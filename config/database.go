package config

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"speaky-backend/config/common"
	"speaky-backend/config/logger"
	"speaky-backend/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

// schemaPattern allow-lists the configured namespace. The schema is bound
// once here as a table prefix, never interpolated from request input.
var schemaPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort, dbSchema := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)

	naming := gormschema.NamingStrategy{}
	if dbSchema != "" {
		if !schemaPattern.MatchString(dbSchema) {
			log.Http.Error.Error().Str("schema", dbSchema).Msg("invalid database schema name")
			panic("invalid database schema name")
		}
		naming.TablePrefix = dbSchema + "."
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: naming,
	})
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		panic("failed to connect database")
	}

	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Friendship{},
		&entity.BlockedUser{},
		&entity.Chat{},
		&entity.ChatMember{},
		&entity.Message{},
	); err != nil {
		panic("failed run migration")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))
	return db
}
