package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// No 0/O or 1/I so codes survive being read aloud or retyped.
const giftCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateRandomString(length int, charset string) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}
	return string(b), nil
}

// GenerateGiftCode returns a redemption code shaped like MEAL-XXXX-XXXX.
func GenerateGiftCode() (string, error) {
	s, err := GenerateRandomString(8, giftCodeCharset)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{"MEAL", s[:4], s[4:]}, "-"), nil
}
