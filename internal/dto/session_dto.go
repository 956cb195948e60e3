package dto

import (
	"github.com/noah-isme/eduonboard-api/internal/models"
)

// ProfileResponse mirrors the displayable profile fields. Empty strings
// render as placeholder values client-side.
type ProfileResponse struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	RollNumber string `json:"roll_number"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatar_url"`
}

// SessionResponse is the identity bootstrap payload: who the caller is,
// which role gates their views, and their profile if one exists.
type SessionResponse struct {
	UserID  string           `json:"user_id"`
	Role    models.AppRole   `json:"role"`
	Profile *ProfileResponse `json:"profile"`
}

// NewProfileResponse converts a profile model.
func NewProfileResponse(p models.Profile) *ProfileResponse {
	return &ProfileResponse{
		FullName:   p.FullName,
		Department: p.Department,
		RollNumber: p.RollNumber,
		Phone:      p.Phone,
		AvatarURL:  p.AvatarURL,
	}
}
