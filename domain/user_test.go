package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "vN3#mQ8$wL5@pR7",
		})
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("vN3#mQ8$wL5@pR7"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects bad usernames", func(t *testing.T) {
		for _, username := range []string{"ab", "has space", "way_too_long_username_here", "no$symbols"} {
			_, err := NewUser(UserConfig{
				ID:            uuid.New(),
				Username:      username,
				PlainPassword: "vN3#mQ8$wL5@pR7",
			})
			assert.Error(t, err, "username %q", username)
		}
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maze_runner",
			PlainPassword: "password123",
		})
		assert.Error(t, err)
	})
}
