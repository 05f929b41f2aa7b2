package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAcceptKey(t *testing.T) {
	// Known-answer pair from RFC 6455 section 1.3.
	got := GenerateAcceptKey("dGhlIHNhbXBsZSBub25jZQ==")

	assert.Equal(t, "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", got)
}

func TestGenerateConnectionID(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := GenerateConnectionID()

		assert.NotEmpty(t, id)
		assert.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}
