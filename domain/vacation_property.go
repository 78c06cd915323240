package domain

import "time"

// VacationProperty is a listing owned by a host user.
type VacationProperty struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"size:2048" json:"image_url"`
	HostID      uint      `gorm:"not null;index" json:"host_id"`
	Host        *User     `gorm:"foreignKey:HostID" json:"host,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VacationProperty) TableName() string {
	return "vacation_properties"
}
