package utils

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
)

// RandToken returns size random bytes encoded as URL-safe base64
func RandToken(size int) string {
	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// StringToUInt64Ptr returns nil for empty or invalid input
func StringToUInt64Ptr(in string) *uint64 {
	i, err := strconv.ParseUint(in, 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

func FormatUInt64(i uint64) string {
	return strconv.FormatUint(i, 10)
}
