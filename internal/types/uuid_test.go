package types

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithPrefix(t *testing.T) {
	id := GenerateUUIDWithPrefix(UUID_PREFIX_SERVICE_REQUEST)
	assert.True(t, strings.HasPrefix(id, "req_"))

	assert.NotEqual(t, id, GenerateUUIDWithPrefix(UUID_PREFIX_SERVICE_REQUEST))

	// no prefix yields a bare ULID
	assert.NotContains(t, GenerateUUIDWithPrefix(""), "_")
}

func TestGenerateRequestNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^REQ-\d{8}-[A-Z0-9]+$`)

	number := GenerateRequestNumber()
	assert.True(t, pattern.MatchString(number), "unexpected format: %s", number)

	assert.NotEqual(t, number, GenerateRequestNumber())
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]+$`)

	number := GenerateOrderNumber()
	assert.True(t, pattern.MatchString(number), "unexpected format: %s", number)

	assert.NotEqual(t, number, GenerateOrderNumber())
}
