package database

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen(t *testing.T) {
	db, err := Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	var buf bytes.Buffer
	db = db.Session(&gorm.Session{Logger: newLogger(&buf)})

	err = db.First(&models.Category{}, 42).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String())

	require.NoError(t, db.Create(&models.NewsLetter{Email: "reader@example.com"}).Error)
	err = db.Create(&models.NewsLetter{Email: "reader@example.com"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "")
	assert.ErrorContains(t, err, "unsupported database driver")
}
