package auth

import "golang.org/x/crypto/bcrypt"

// The existing user base was hashed at cost 6; keep it so stored hashes
// verify without a migration.
const bcryptCost = 6

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcryptCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
