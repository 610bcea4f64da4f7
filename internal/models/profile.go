package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the display settings of a user. The currency is only used
// for formatting, there is no conversion.
type Profile struct {
	UserID    uuid.UUID `json:"userId" gorm:"primaryKey"`        // The user the profile belongs to
	FullName  string    `json:"fullName" example:"Jordan Baker"` //
	Currency  string    `json:"currency" example:"EUR"`          // 3-letter ISO 4217 code, display only
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if len(p.Currency) != 3 {
		return ErrCurrencyInvalid
	}

	return nil
}

// GetProfile returns the profile of the user, creating the default profile
// on first access.
func GetProfile(db *gorm.DB, userID uuid.UUID) (Profile, error) {
	if userID == uuid.Nil {
		return Profile{}, ErrUnauthenticated
	}

	var profile Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, ErrNotFound) {
		profile = Profile{UserID: userID, Currency: "USD"}
		err = db.Create(&profile).Error
	}
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// UpdateProfile changes the full name and currency of the user's profile.
func UpdateProfile(db *gorm.DB, userID uuid.UUID, fullName, currency string) (Profile, error) {
	profile, err := GetProfile(db, userID)
	if err != nil {
		return Profile{}, err
	}

	profile.FullName = fullName
	profile.Currency = currency

	err = db.Model(&profile).Select("FullName", "Currency").Updates(profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}
