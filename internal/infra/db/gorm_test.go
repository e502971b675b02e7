package db_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Natoons/cynova/internal/domain/model"
	"github.com/Natoons/cynova/internal/infra/db"
	"github.com/Natoons/cynova/internal/infra/db/dbtest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrateAndPing(t *testing.T) {
	gormDB := dbtest.Open(t)

	require.NoError(t, db.Ping(context.Background(), gormDB))
	for _, m := range []any{&model.Product{}, &model.Ingredient{}, &model.Blog{}, &model.User{}} {
		assert.True(t, gormDB.Migrator().HasTable(m))
	}
}

func TestOpen_TranslatesDuplicateKey(t *testing.T) {
	gormDB := dbtest.Open(t)

	require.NoError(t, gormDB.Create(&model.Ingredient{Name: "Aloe"}).Error)
	err := gormDB.Create(&model.Ingredient{Name: "Aloe"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := db.NewGormLogger(zerolog.New(&buf), 0)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	assert.Contains(t, buf.String(), "query failed")
}

func TestGormLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := db.NewGormLogger(zerolog.New(&buf), 0).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "x %d", 1)
	assert.Zero(t, buf.Len())
}
