package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkTokens(t *testing.T) {
	tokens := make([]string, 1001)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	chunks := chunkTokens(tokens, maxMulticastTokens)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Equal(t, []string{"token-1000"}, chunks[2])

	assert.Empty(t, chunkTokens(nil, maxMulticastTokens))
}
