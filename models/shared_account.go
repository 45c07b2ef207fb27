package models

import (
	"time"
)

const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"
)

// SharedAccount is a ledger shared between several users.
type SharedAccount struct {
	ID          uint                  `json:"id" gorm:"primaryKey"`
	OwnerID     uint                  `json:"owner_id" gorm:"index;not null"`
	Name        string                `json:"name" gorm:"size:100;not null"`
	Description string                `json:"description" gorm:"size:255"`
	CreatedAt   time.Time             `json:"created_at"`
	Owner       User                  `json:"-" gorm:"foreignKey:OwnerID"`
	Members     []SharedAccountMember `json:"members,omitempty" gorm:"foreignKey:SharedAccountID"`
}

func (SharedAccount) TableName() string {
	return "shared_accounts"
}

// SharedAccountMember links a user to a shared account.
type SharedAccountMember struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SharedAccountID uint      `json:"shared_account_id" gorm:"uniqueIndex:idx_shared_member;not null"`
	UserID          uint      `json:"user_id" gorm:"uniqueIndex:idx_shared_member;index;not null"`
	Role            string    `json:"role" gorm:"size:20;not null"`
	CreatedAt       time.Time `json:"created_at"`
	User            User      `json:"-" gorm:"foreignKey:UserID"`
}

func (SharedAccountMember) TableName() string {
	return "shared_account_members"
}
