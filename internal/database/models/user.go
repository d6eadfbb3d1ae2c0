package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole represents the role of a platform user
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents a registered account on the donation platform
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName   string    `json:"firstName" gorm:"not null;size:20" validate:"required,min=2,max=20"`
	LastName    string    `json:"lastName" gorm:"not null;size:20" validate:"required,min=2,max=20"`
	PhoneNumber string    `json:"phoneNumber" gorm:"not null;size:10" validate:"required,len=10,numeric"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password    string    `json:"-" gorm:"not null;size:100"`
	Country     string    `json:"country" gorm:"size:100"`
	Address     string    `json:"address,omitempty" gorm:"size:200"`
	IsVerified  bool      `json:"isVerified" gorm:"not null;default:false"`
	EmailToken  string    `json:"-" gorm:"size:64;index"`
	Role        UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"-"`

	Organisations []Organisation `json:"organisations,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets the UUID if not already set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
