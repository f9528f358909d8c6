package validate

import "math"

// PasswordCheck is the per-rule breakdown of a password.
type PasswordCheck struct {
	LongEnough bool // >= 8 chars
	VeryLong   bool // >= 12 chars, bonus signal only
	HasUpper   bool
	HasLower   bool
	HasSpecial bool // any char outside [A-Za-z0-9]

	// Valid requires LongEnough, HasUpper, HasLower and HasSpecial.
	// VeryLong is not required.
	Valid bool
}

// PasswordChecks evaluates every password rule.
func PasswordChecks(password string) PasswordCheck {
	c := PasswordCheck{
		LongEnough: len(password) >= 8,
		VeryLong:   len(password) >= 12,
	}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.HasUpper = true
		case r >= 'a' && r <= 'z':
			c.HasLower = true
		case r >= '0' && r <= '9':
			// digits count toward no class
		default:
			c.HasSpecial = true
		}
	}
	c.Valid = c.LongEnough && c.HasUpper && c.HasLower && c.HasSpecial
	return c
}

type StrengthTier string

const (
	TierWeak   StrengthTier = "weak"   // < 40%
	TierMedium StrengthTier = "medium" // < 80%
	TierStrong StrengthTier = "strong"
)

// Strength scores a password out of the five rules.
type Strength struct {
	Score   int // 0..5
	Percent int // round(score/5 * 100)
	Tier    StrengthTier
}

// PasswordStrength computes the displayed strength meter value.
func PasswordStrength(password string) Strength {
	c := PasswordChecks(password)

	score := 0
	for _, ok := range []bool{c.LongEnough, c.VeryLong, c.HasUpper, c.HasLower, c.HasSpecial} {
		if ok {
			score++
		}
	}

	percent := int(math.Round(float64(score) / 5 * 100))
	tier := TierStrong
	switch {
	case percent < 40:
		tier = TierWeak
	case percent < 80:
		tier = TierMedium
	}

	return Strength{Score: score, Percent: percent, Tier: tier}
}
