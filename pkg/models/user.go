package models

import (
	"time"

	"github.com/shopverse/shopverse/pkg/enums"
	"github.com/shopverse/shopverse/pkg/types"
)

// User is an account record. Email is unique case-insensitively across
// the registered directory. The credential is stored separately, keyed
// by user id; it never travels on this struct.
type User struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      types.Address  `json:"address"`
	Role         enums.UserRole `json:"role"`
	ProfileImage string         `json:"profileImage,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
