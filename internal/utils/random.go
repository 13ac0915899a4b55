package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const (
	numberBytes = "0123456789"
	base36Bytes = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateID builds an opaque record id from the current time in base36 plus
// a random base36 suffix. Collisions are accepted, not eliminated.
func GenerateID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + generateRandom(11, base36Bytes)
}

func GenerateRandomNumericString(length int) string {
	return generateRandom(length, numberBytes)
}

func GenerateRandomBase36String(length int) string {
	return generateRandom(length, base36Bytes)
}

func generateRandom(length int, charset string) string {
	result := make([]byte, length)
	charsetLength := big.NewInt(int64(len(charset)))

	for i := range result {
		num, _ := rand.Int(rand.Reader, charsetLength)
		result[i] = charset[num.Int64()]
	}

	return string(result)
}

// GenerateVerificationCode returns a 6-digit code with no leading-zero
// restriction beyond staying in the 100000-999999 range.
func GenerateVerificationCode() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(900000))
	return strconv.FormatInt(100000+n.Int64(), 10)
}
