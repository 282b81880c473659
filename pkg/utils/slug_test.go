package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "sunset-cruises", GenerateSlug("Sunset Cruises"))
	assert.Equal(t, "cafe-del-mar", GenerateSlug("Café del Mar"))
	assert.Equal(t, "beach-club-2", GenerateSlug("Beach  Club   2"))
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("sunset-cruises"))
	assert.NoError(t, ValidateSlug("abc"))
	assert.NoError(t, ValidateSlug("a1b2-c3"))

	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("ab"), "too short")
	assert.Error(t, ValidateSlug("Sunset-Cruises"), "uppercase")
	assert.Error(t, ValidateSlug("sunset--cruises"), "double hyphen")
	assert.Error(t, ValidateSlug("-sunset"), "leading hyphen")
	assert.Error(t, ValidateSlug("sunset-"), "trailing hyphen")
	assert.Error(t, ValidateSlug("sunset cruises"), "space")
	assert.Error(t, ValidateSlug("admin"), "reserved")
	assert.Error(t, ValidateSlug("API"), "reserved regardless of case")
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("b2e7c9e0-1d2f-4a6b-9c3d-5e6f7a8b9c0d"))
	assert.False(t, IsUUID("sunset-cruises"))
	assert.False(t, IsUUID("b2e7c9e0-1d2f-4a6b-9c3d"))
}
