package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetLocation(t *testing.T) {
	tz8 := GetLocation("GMT+8")
	assert.NotNil(t, tz8)
	assert.Equal(t, "GMT+8", tz8.String())

	tz_8 := GetLocation("gmt-8")
	assert.NotNil(t, tz_8)
	assert.Equal(t, "GMT-8", tz_8.String())

	assert.Nil(t, GetLocation("GMT+20"))
}

func TestResolveLocation(t *testing.T) {
	loc, err := ResolveLocation("")
	assert.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ResolveLocation("Local")
	assert.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ResolveLocation("GMT+1")
	assert.NoError(t, err)
	assert.Equal(t, "GMT+1", loc.String())

	loc, err = ResolveLocation("UTC")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = ResolveLocation("Nowhere/Neverland")
	assert.Error(t, err)
}
