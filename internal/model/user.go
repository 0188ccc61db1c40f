package model

import "time"

// Language is the interface language of a registered user.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageUZ Language = "uz"
)

func (l Language) Valid() bool {
	return l == LanguageRU || l == LanguageUZ
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == LanguageUZ {
		return LanguageRU
	}
	return LanguageUZ
}

// Role is the staff role granted after registration.
type Role string

const (
	RoleChef      Role = "chef"
	RoleFinancier Role = "financier"
	RoleSupplier  Role = "supplier"
)

// Roles lists all selectable roles in display order.
var Roles = []Role{RoleChef, RoleFinancier, RoleSupplier}

func (r Role) Valid() bool {
	return r == RoleChef || r == RoleFinancier || r == RoleSupplier
}

// BranchScoped reports whether the role works with a single concrete branch.
// Financiers and suppliers see every branch and carry the sentinel instead.
func (r Role) BranchScoped() bool {
	return r == RoleChef
}

// Branch names a restaurant branch, or BranchAll for roles without one.
type Branch string

const (
	BranchChilanzar   Branch = "chilanzar"
	BranchUchtepa     Branch = "uchtepa"
	BranchShayzantaur Branch = "shayzantaur"
	BranchOlmazar     Branch = "olmazar"
	BranchAll         Branch = "all"
)

// Branches lists the concrete branches offered during registration.
var Branches = []Branch{BranchChilanzar, BranchUchtepa, BranchShayzantaur, BranchOlmazar}

func (b Branch) Valid() bool {
	switch b {
	case BranchChilanzar, BranchUchtepa, BranchShayzantaur, BranchOlmazar:
		return true
	}
	return false
}

// ConsistentBranch checks the joint role/branch invariant: branch-scoped
// roles need a concrete branch, every other role carries the sentinel.
func ConsistentBranch(role Role, branch Branch) bool {
	if role.BranchScoped() {
		return branch.Valid()
	}
	return branch == BranchAll
}

// UserProfile stores a registered staff member.
type UserProfile struct {
	ID         string   `gorm:"primaryKey"`
	TelegramID int64    `gorm:"uniqueIndex"`
	FullName   string   `gorm:"not null"`
	Role       Role     `gorm:"not null"`
	Branch     Branch
	Language   Language `gorm:"default:ru"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (UserProfile) TableName() string { return "users" }
