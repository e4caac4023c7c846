package entity

import (
	"strings"
	"time"
	"unicode"
)

// Profile holds the payer information joined into the leaderboard
type Profile struct {
	ID             string
	Email          string
	FullName       string
	Role           string
	IsRotaryMember bool
	City           string
	Country        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayName returns the full name when present, otherwise the local part of
// the email address
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if at := strings.IndexByte(p.Email, '@'); at > 0 {
		return p.Email[:at]
	}
	return p.Email
}

// AvatarInitials returns the uppercase initials of each name token, or the
// first letter of the email when no name is set
func (p *Profile) AvatarInitials() string {
	if p.FullName != "" {
		var b strings.Builder
		for _, token := range strings.Fields(p.FullName) {
			r := []rune(token)
			b.WriteRune(unicode.ToUpper(r[0]))
		}
		return b.String()
	}
	if p.Email != "" {
		return strings.ToUpper(p.Email[:1])
	}
	return ""
}

// DisplayCity returns the profile's city, defaulting to Kathmandu when unset
func (p *Profile) DisplayCity() string {
	if p.City == "" {
		return "Kathmandu"
	}
	return p.City
}
