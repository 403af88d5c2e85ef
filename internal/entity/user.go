package entity

import (
	"shiplyne/internal/common"
	"time"
)

type User struct {
	Id           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	Phone        string      `json:"phone" db:"phone"`
	UserType     common.Role `json:"userType" db:"user_type"`
	Company      string      `json:"company" db:"company"`
	Address      string      `json:"address" db:"address"`
	City         string      `json:"city" db:"city"`
	State        string      `json:"state" db:"state"`
	Pincode      string      `json:"pincode" db:"pincode"`
	ProfileImage string      `json:"profileImage,omitempty" db:"profile_image"`
	Verified     bool        `json:"verified" db:"verified"`
	Rating       float64     `json:"rating" db:"rating"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
}
