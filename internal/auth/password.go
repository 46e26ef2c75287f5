package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"crypto/rand"
)

// Password hashing uses bcrypt as the primary scheme. Digests produced by
// the previous deployment (passlib pbkdf2_sha256) are still accepted for
// verification so existing accounts keep working; they are never produced
// for new passwords unless bcrypt itself fails (passwords over 72 bytes).

const (
	pbkdf2Prefix     = "pbkdf2_sha256"
	pbkdf2Iterations = 29000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 32
)

// HashPassword returns a digest for plain. bcrypt first; pbkdf2_sha256 when
// bcrypt cannot hash the input.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err == nil {
		return string(digest), nil
	}
	return hashPBKDF2(plain)
}

// VerifyPassword reports whether plain matches digest. Malformed digests and
// unknown schemes verify as false, never as an error.
func VerifyPassword(plain, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
	case strings.HasPrefix(digest, pbkdf2Prefix+"$"):
		return verifyPBKDF2(plain, digest)
	default:
		return false
	}
}

func hashPBKDF2(plain string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plain), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s",
		pbkdf2Prefix,
		pbkdf2Iterations,
		encodeAB64(salt),
		encodeAB64(key),
	), nil
}

func verifyPBKDF2(plain, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := decodeAB64(parts[2])
	if err != nil {
		return false
	}
	want, err := decodeAB64(parts[3])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plain), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// passlib stores salt and hash in "adapted base64": '.' instead of '+',
// no padding.
func encodeAB64(b []byte) string {
	s := base64.RawStdEncoding.EncodeToString(b)
	return strings.ReplaceAll(s, "+", ".")
}

func decodeAB64(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, ".", "+")
	return base64.RawStdEncoding.DecodeString(s)
}
