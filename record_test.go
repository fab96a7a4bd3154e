package postdex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedlab/postdex/postdex_errors"
)

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord(1, "2024-04-13 01:00:00", "Check out this Sunset photo!", "Asma", 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rec.Id)
	assert.Equal(t, "2024-04-13 01:00:00", rec.Timestamp)
	assert.Equal(t, "Asma", rec.Author)
	assert.Equal(t, int64(100), rec.Views)
}

func TestNewRecord_NegativeViews(t *testing.T) {
	rec, err := NewRecord(1, "2024-04-13 01:00:00", "x", "y", -1)
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, postdex_errors.ErrInvalidRecord)
}

func TestNewRecord_ZeroViewsOk(t *testing.T) {
	rec, err := NewRecord(2, "2024-04-13 02:00:00", "", "", 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rec.Views)
}
