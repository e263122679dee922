package domain

// User is an account that owns reservations and favorites.
// Username and email are unique at the storage layer.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"not null;uniqueIndex" validate:"required"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
	Name         string `json:"name" gorm:"not null" validate:"required"`
	Email        string `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
}

func (User) TableName() string { return "users" }
