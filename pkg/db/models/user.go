package models

// User is the canonical identity row. The served API reads and writes it
// through the Supabase proxy; this model exists for migrations.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;not null"`
	Email        string `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash string `gorm:"column:password_hash;not null"`
}
