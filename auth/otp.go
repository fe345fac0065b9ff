package auth

import (
	"fmt"
	"math/rand/v2"
)

// codeLength is the number of digits in a one-time code.
const codeLength = 6

// generateCode returns a uniformly random numeric code of codeLength digits.
// Leading zeros are preserved, so "004217" is a valid code.
func generateCode() string {
	return fmt.Sprintf("%0*d", codeLength, rand.IntN(1_000_000))
}
