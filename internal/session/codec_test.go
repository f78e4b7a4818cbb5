package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	in := models.Session{Name: "alice", Message: "Successfully logged in!", LoggedIn: true}
	token, err := c.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, in, c.Decode(token))
}

func TestDecodeMalformedFallsBackToDefault(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "{\"name\":\"x\"}"} {
		assert.Equal(t, models.DefaultSession(), c.Decode(raw), "raw=%q", raw)
	}
}

// Tokens are taken at face value: one minted under a different secret still
// decodes. This pins the documented trust model.
func TestDecodeAcceptsForeignToken(t *testing.T) {
	theirs := NewCodec("their-secret", time.Hour)
	ours := NewCodec("our-secret", time.Hour)

	in := models.Session{Name: "mallory", Message: "hi", LoggedIn: true}
	token, err := theirs.Encode(in)
	require.NoError(t, err)

	assert.Equal(t, in, ours.Decode(token))
}
