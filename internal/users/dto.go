package users

import (
	"time"

	"github.com/logixport/logixport-backend/pkg/db/models"
	"github.com/logixport/logixport-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials. The role
// serializes as "rol" to match the established client contract.
type UserDTO struct {
	ID               uint       `json:"id"`
	Email            string     `json:"email"`
	Username         *string    `json:"username,omitempty"`
	Role             string     `json:"rol"`
	IsActive         bool       `json:"is_active"`
	Company          *string    `json:"company,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Avatar           *string    `json:"avatar,omitempty"`
	MembershipActive bool       `json:"membership_active"`
	MembershipPlan   *string    `json:"membership_plan,omitempty"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	Username     *string
	PasswordHash string
	Company      *string
	Phone        *string
	Role         enums.Role
	IsActive     *bool
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	var plan *string
	if u.MembershipPlan != nil {
		value := string(*u.MembershipPlan)
		plan = &value
	}

	return &UserDTO{
		ID:               u.ID,
		Email:            u.Email,
		Username:         u.Username,
		Role:             string(u.Role),
		IsActive:         u.IsActive,
		Company:          u.Company,
		Phone:            u.Phone,
		Avatar:           u.Avatar,
		MembershipActive: u.MembershipActive,
		MembershipPlan:   plan,
		LastLoginAt:      u.LastLoginAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	role := c.Role
	if role == "" {
		role = enums.RoleUser
	}

	return &models.User{
		Email:        c.Email,
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		Company:      c.Company,
		Phone:        c.Phone,
		IsActive:     isActive,
		Role:         role,
	}
}
