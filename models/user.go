package models

import "golang.org/x/crypto/bcrypt"

// User is a customer account record. No route reads or writes users yet.
type User struct {
	Name         string  `bson:"name" json:"name" validate:"required"`
	Email        string  `bson:"email" json:"email" validate:"required,email"`
	PasswordHash *string `bson:"password_hash" json:"-"`
	IsActive     bool    `bson:"is_active" json:"is_active"`
}

func NewUser() *User {
	return &User{IsActive: true}
}

func (*User) CollectionName() string { return "user" }

// SetPassword stores a bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
	if err != nil {
		return err
	}
	h := string(hashed)
	u.PasswordHash = &h
	return nil
}

// CheckPassword reports whether plain matches the stored hash. Users without
// a hash never match.
func (u *User) CheckPassword(plain string) bool {
	if u.PasswordHash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(plain)) == nil
}
