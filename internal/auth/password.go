package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt digest. Plaintext is never stored.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a candidate against a stored digest using bcrypt's
// own comparison, which is safe against timing leaks.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
