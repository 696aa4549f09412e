package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleChair    Role = "chair"
	RoleReviewer Role = "reviewer"
	RolePI       Role = "pi"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement" json:"uid"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	Role      string    `gorm:"size:20;default:'pi';not null" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}

// IsChair reports whether the user can make stage-1 and final decisions.
func (u *User) IsChair() bool {
	return u.Role == string(RoleChair) || u.Role == string(RoleAdmin)
}
