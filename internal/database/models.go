package database

import (
	"time"
)

// User is the durable onboarding record, keyed by the subject id the
// identity provider attests to. Created once per uid, read thereafter.
type User struct {
	UID             string    `json:"uid" gorm:"column:uid;primaryKey"`
	EmailEntered    string    `json:"email_entered"`
	EmailNormalized string    `json:"email_normalized"`
	EmailValidated  bool      `json:"email_validated"`
	Phone           string    `json:"phone"`
	PhoneValidated  bool      `json:"phone_validated"`
	Role            string    `json:"role" gorm:"default:'trial'"`
	FirstName       *string   `json:"first_name"`
	LastName        *string   `json:"last_name"`
	CreatedAt       time.Time `json:"created_at" gorm:"default:now()"`
}

func (u *User) TableName() string {
	return "account.user"
}
