package random

import (
	"math/rand/v2"
	"strings"
)

const (
	base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	confirmationPrefix = "CONF-"
	confirmationLength = 13
)

// ConfirmationNumber generates a human-shareable booking token of the form
// CONF-<base36>. Collisions are accepted as negligible; the store does not
// deduplicate.
func ConfirmationNumber() string {
	var sb strings.Builder
	sb.Grow(len(confirmationPrefix) + confirmationLength)
	sb.WriteString(confirmationPrefix)

	for range confirmationLength {
		sb.WriteByte(base36Upper[rand.IntN(len(base36Upper))])
	}

	return sb.String()
}
