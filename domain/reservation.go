package domain

import "time"

// ReservationStatus is the lifecycle state of a reservation request.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationRejected  ReservationStatus = "rejected"
)

// Reservation links a guest to a vacation property. Only the table
// exists for now; nothing creates rows yet.
type Reservation struct {
	ID                 uint              `gorm:"primaryKey" json:"id"`
	Message            string            `gorm:"type:text" json:"message"`
	Status             ReservationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	StartDate          *time.Time        `json:"start_date,omitempty"`
	EndDate            *time.Time        `json:"end_date,omitempty"`
	GuestID            uint              `gorm:"not null;index" json:"guest_id"`
	Guest              *User             `gorm:"foreignKey:GuestID" json:"-"`
	VacationPropertyID uint              `gorm:"not null;index" json:"vacation_property_id"`
	VacationProperty   *VacationProperty `gorm:"foreignKey:VacationPropertyID" json:"-"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}
