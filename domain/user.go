package domain

import "time"

// User is an account that can host properties and make reservations.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Email       string    `gorm:"size:320;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never the plaintext
	PhoneNumber string    `gorm:"size:32" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	VacationProperties []VacationProperty `gorm:"foreignKey:HostID" json:"-"`
}

// TableName pins the table name.
func (User) TableName() string {
	return "users"
}
