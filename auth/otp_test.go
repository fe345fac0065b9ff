package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	seenLeadingZero := false
	for i := 0; i < 10_000; i++ {
		code := generateCode()
		assert.Len(t, code, codeLength)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "code must be numeric, got %q", code)
		}
		if code[0] == '0' {
			seenLeadingZero = true
		}
	}
	// Roughly one code in ten starts with a zero; 10k samples make a miss
	// vanishingly unlikely.
	assert.True(t, seenLeadingZero, "codes below 100000 must keep their leading zeros")
}

func TestOtpChallengeUsable(t *testing.T) {
	t.Parallel()

	now := time.Now()
	challenge := OtpChallenge{
		GeneratedAt: now,
		ExpiresAt:   now.Add(15 * time.Minute),
	}

	assert.True(t, challenge.Usable(now))
	assert.True(t, challenge.Usable(now.Add(15*time.Minute-time.Second)))
	assert.False(t, challenge.Usable(now.Add(15*time.Minute)), "expiry instant is exclusive")
	assert.False(t, challenge.Usable(now.Add(16*time.Minute)))

	validated := challenge
	validated.Validated = true
	assert.False(t, validated.Usable(now), "consumed challenges are never usable")
}
