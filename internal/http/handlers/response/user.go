package response

import (
	"letsconnect/internal/core/domain/identity"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	MobileNumber *string   `json:"mobileNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) FromDomainUser(du identity.User) {
	u.ID = string(du.ID)
	u.Username = string(du.Username)
	if du.Email.IsPresent {
		email := du.Email.Value
		u.Email = &email
	}
	if du.MobileNumber.IsPresent {
		mobileNumber := du.MobileNumber.Value
		u.MobileNumber = &mobileNumber
	}
	u.CreatedAt = du.CreatedAt
}
