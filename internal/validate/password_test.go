package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordChecks(t *testing.T) {
	c := PasswordChecks("Abc12345!")
	assert.True(t, c.LongEnough)
	assert.False(t, c.VeryLong)
	assert.True(t, c.HasUpper)
	assert.True(t, c.HasLower)
	assert.True(t, c.HasSpecial)
	assert.True(t, c.Valid)

	assert.False(t, PasswordChecks("abc").Valid)
	// no lowercase
	assert.False(t, PasswordChecks("ALLUPPER1!").Valid)
	// no special character
	assert.False(t, PasswordChecks("Abc12345").Valid)
	// 12+ chars is a bonus, not a requirement
	assert.True(t, PasswordChecks("Short1!x").Valid)
}

func TestPasswordStrength(t *testing.T) {
	empty := PasswordStrength("")
	assert.Equal(t, 0, empty.Score)
	assert.Equal(t, 0, empty.Percent)
	assert.Equal(t, TierWeak, empty.Tier)

	full := PasswordStrength("Ab1!Ab1!Ab1!")
	assert.Equal(t, 5, full.Score)
	assert.Equal(t, 100, full.Percent)
	assert.Equal(t, TierStrong, full.Tier)

	// 8 chars, upper+lower only: 3 of 5 -> 60% -> medium
	mid := PasswordStrength("Abcdefgh")
	assert.Equal(t, 3, mid.Score)
	assert.Equal(t, 60, mid.Percent)
	assert.Equal(t, TierMedium, mid.Tier)

	// lowercase alone: 1 of 5 -> 20% -> weak
	weak := PasswordStrength("abc")
	assert.Equal(t, 20, weak.Percent)
	assert.Equal(t, TierWeak, weak.Tier)

	// 4 of 5 -> 80% -> strong (boundary is exclusive below 80)
	strong := PasswordStrength("Abcdefg1!")
	assert.Equal(t, 4, strong.Score)
	assert.Equal(t, 80, strong.Percent)
	assert.Equal(t, TierStrong, strong.Tier)
}
