package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted one-way bcrypt digest of the plaintext.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// The comparison is constant-time; a malformed digest (corrupted storage)
// reports false rather than failing.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
