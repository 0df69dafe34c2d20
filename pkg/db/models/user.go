package models

// User represents a registered account. HashedPassword holds the Argon2id
// output, never the plaintext.
type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"type:text;not null;uniqueIndex"`
	HashedPassword string `gorm:"column:hashed_password;not null"`
}
