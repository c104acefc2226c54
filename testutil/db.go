package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"speaky-backend/entity"
)

// SetupTestDB opens a fresh in-memory database for one test and migrates the
// full schema. Foreign keys are enforced to match production behavior.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Friendship{},
		&entity.BlockedUser{},
		&entity.Chat{},
		&entity.ChatMember{},
		&entity.Message{},
	))
	return db
}

func NewTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// CreateUser inserts a user row directly, bypassing the registration flow.
func CreateUser(t *testing.T, db *gorm.DB, phone, nickname, username string) entity.User {
	t.Helper()

	user := entity.User{
		Phone:    phone,
		Nickname: nickname,
		Username: username,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
