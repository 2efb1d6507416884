package auth

import (
	"testing"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: minBcryptCost}}).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "s3cret-password"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	// Two hashes of the same password must differ (random salt),
	// and both must still verify.
	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "s3cret-password"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with malformed hash: mismatch, never a panic
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_CostFloor(t *testing.T) {
	// A cost below the floor is raised to the floor, including the zero value
	// when the auth section is missing entirely.
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}).(*bcryptHasher)
	assert.Equal(t, minBcryptCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, minBcryptCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}).(*bcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}
