package secrets

import (
	"crypto/rand"
	"math/big"

	dErrors "entragraph/pkg/domain-errors"
)

// Character classes for generated passwords. Lowercase "l" and uppercase "L"
// are excluded to avoid ambiguity with "1" and "I" in transcribed passwords.
const (
	digits    = "0123456789"
	lowercase = "abcdefghijkmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKMNOPQRSTUVWXYZ"
	symbols   = "@#$%=:?./|~>*()<"
)

const minPasswordLength = 8

// Password generates a cryptographically secure random password of the given
// length. The result always contains at least one digit, one uppercase letter,
// one lowercase letter, and one symbol; the remaining characters are drawn
// from the union of all classes and the whole string is shuffled so the class
// guarantees do not leak positional structure.
func Password(length int) (string, error) {
	if length < minPasswordLength {
		return "", dErrors.New(dErrors.CodeValidation, "password length must be at least 8")
	}

	combined := digits + lowercase + uppercase + symbols

	buf := make([]byte, 0, length)
	for _, class := range []string{digits, uppercase, lowercase, symbols} {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for len(buf) < length {
		c, err := pick(combined)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	if err := shuffle(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func pick(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "could not generate password")
	}
	return alphabet[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle using crypto/rand.
func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "could not generate password")
		}
		j := n.Int64()
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
