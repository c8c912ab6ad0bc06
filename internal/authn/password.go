package authn

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt hash used when the account lookup misses, so
// login always pays the cost of one bcrypt comparison. Timing must not
// distinguish "no such account" from "wrong password".
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// HashPassword returns a salted one-way bcrypt hash of the password. The
// plaintext is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

// BurnPasswordCheck performs a bcrypt comparison against a fixed hash and
// discards the result.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
