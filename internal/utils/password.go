package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash stored for a dashboard operator
// account. Operator logins are rare, so the default cost is plenty.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether a plaintext password matches a stored
// hash. Any comparison failure counts as a mismatch.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
