// Package auth provides the demo login flow and session handling.
//
// Everything here is deliberately non-cryptographic apart from password
// hashing: the issued token is a plain base64 session marker that any
// client could forge. It identifies, it does not authenticate. Do not
// reuse this package as a real security boundary.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Role is a user's access role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the safe, public projection of an account: everything a client
// may see, never the password hash.
type User struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Sections []string `json:"sectionsAutorisees"`
}

// account is an internal demo account with its credential.
type account struct {
	User
	passwordHash []byte
}

// demoAccounts is the static in-memory user list. Hashes are computed at
// startup from plain demo passwords, mirroring how the demo data set is
// maintained.
var demoAccounts = buildDemoAccounts()

func buildDemoAccounts() []account {
	seed := []struct {
		user     User
		password string
	}{
		{
			user: User{
				Email:    "admin@example.com",
				Name:     "Administrateur",
				Role:     RoleAdmin,
				Sections: []string{},
			},
			password: "password",
		},
		{
			user: User{
				Email:    "user@example.com",
				Name:     "Utilisateur",
				Role:     RoleUser,
				Sections: []string{"A", "B"},
			},
			password: "password",
		},
	}

	accounts := make([]account, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), 8)
		if err != nil {
			panic("hashing demo password: " + err.Error())
		}
		accounts = append(accounts, account{User: s.user, passwordHash: hash})
	}
	return accounts
}

// findAccount returns the demo account with an exact email match.
func findAccount(email string) (account, bool) {
	for _, a := range demoAccounts {
		if a.Email == email {
			return a, true
		}
	}
	return account{}, false
}

// UserByEmail returns the public projection of a known account.
func UserByEmail(email string) (User, bool) {
	a, ok := findAccount(email)
	if !ok {
		return User{}, false
	}
	return a.User, true
}
