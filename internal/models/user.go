package models

import "time"

// Каталог ролей. Recruiter/Candidate — внешние (external-facing) роли,
// Administrator/General Manager дают add/edit-страницы по умолчанию.
const (
	RoleAdministrator  = "Administrator"
	RoleGeneralManager = "General Manager"
	RoleRecruiter      = "Recruiter"
	RoleCandidate      = "Candidate"
)

// Каталог страниц (единицы доступа, проверяются по claim'ам токена).
const (
	PageViewJobs     = "ViewJobs"
	PageAddJob       = "AddJob"
	PageApplications = "Applications"
	PageManageUsers  = "ManageUsers"
	PageReports      = "Reports"
)

type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Username   string    `gorm:"size:100;not null;uniqueIndex:idx_users_identity" json:"username"`
	Email      string    `gorm:"size:255;not null;uniqueIndex:idx_users_identity" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone,omitempty"`
	CreatedBy  string    `gorm:"size:36" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	IsArchived bool      `gorm:"not null;default:false" json:"-"`

	Login *Login     `gorm:"foreignKey:UserID" json:"-"`
	Roles []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	Pages []UserPage `gorm:"foreignKey:UserID" json:"pages,omitempty"`
}

// Login хранит соль (ключ HMAC) и хэш пароля. Создаётся один раз при
// регистрации, не обновляется (смены пароля в системе нет).
type Login struct {
	UserID       string    `gorm:"primaryKey;size:36" json:"-"`
	PasswordHash []byte    `gorm:"size:64;not null" json:"-"`
	PasswordSalt []byte    `gorm:"size:64;not null" json:"-"`
	CreatedBy    string    `gorm:"size:36" json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type Role struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsArchived bool   `gorm:"not null;default:false" json:"-"`
}

// ExternalFacing — роль видна снаружи (не staff).
func (r Role) ExternalFacing() bool {
	return r.Name == RoleRecruiter || r.Name == RoleCandidate
}

// Elevated — роль даёт add/edit-страницы при регистрации.
func (r Role) Elevated() bool {
	return r.Name == RoleAdministrator || r.Name == RoleGeneralManager
}

type Page struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsExternal bool   `gorm:"not null;default:false" json:"is_external"`
	IsAddEdit  bool   `gorm:"not null;default:false" json:"is_add_edit"`
	IsArchived bool   `gorm:"not null;default:false" json:"-"`
}

type UserRole struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"size:36;index;not null" json:"-"`
	RoleID     uint      `gorm:"not null" json:"role_id"`
	Role       *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedBy  string    `gorm:"size:36" json:"-"`
	CreatedAt  time.Time `json:"-"`
	IsArchived bool      `gorm:"not null;default:false" json:"-"`
}

type UserPage struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     string    `gorm:"size:36;index;not null" json:"-"`
	PageID     uint      `gorm:"not null" json:"page_id"`
	Page       *Page     `gorm:"foreignKey:PageID" json:"page,omitempty"`
	CreatedBy  string    `gorm:"size:36" json:"-"`
	CreatedAt  time.Time `json:"-"`
	IsArchived bool      `gorm:"not null;default:false" json:"-"`
}

// RolePage — дефолтные выдачи страниц для роли; из них при регистрации
// выводятся UserPage.
type RolePage struct {
	ID         uint  `gorm:"primaryKey" json:"-"`
	RoleID     uint  `gorm:"index;not null" json:"role_id"`
	PageID     uint  `gorm:"not null" json:"page_id"`
	Page       *Page `gorm:"foreignKey:PageID" json:"page,omitempty"`
	IsArchived bool  `gorm:"not null;default:false" json:"-"`
}
