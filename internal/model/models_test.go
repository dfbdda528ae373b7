package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfile_ExcludesPasswordHash(t *testing.T) {
	user := User{
		ID:           4,
		Email:        "bob@x.com",
		PasswordHash: "$2a$10$supersecret",
		Username:     "bob",
		Role:         RoleUser,
	}

	profile := user.Profile()
	body, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "supersecret")
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), `"username":"bob"`)
}

func TestUser_JSONNeverLeaksHash(t *testing.T) {
	user := User{ID: 4, Email: "bob@x.com", PasswordHash: "$2a$10$supersecret", Username: "bob"}

	body, err := json.Marshal(user)
	require.NoError(t, err)

	assert.False(t, strings.Contains(string(body), "supersecret"))
}

func TestColorFromIdentity_AlwaysEnumerated(t *testing.T) {
	known := map[Color]bool{
		ColorWhite: true, ColorBlue: true, ColorBlack: true, ColorRed: true,
		ColorGreen: true, ColorMulticolor: true, ColorColorless: true, ColorUnknown: true,
	}

	inputs := [][]string{
		nil,
		{},
		{"W"}, {"U"}, {"B"}, {"R"}, {"G"},
		{"Z"},
		{"W", "B"},
		{"W", "U", "B", "R", "G"},
	}

	for _, identity := range inputs {
		assert.True(t, known[ColorFromIdentity(identity)], "identity %v", identity)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	require.ErrorIs(t, err, ErrInvalidRole)
}
