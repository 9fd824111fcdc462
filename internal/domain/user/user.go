package user

import (
	"time"
)

// User carries the cost manager's public numeric id as its primary key.
// Ids are chosen by the caller at registration time, not generated by the
// database, so transactions and reports can reference them directly.
type User struct {
	ID          int       `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Birthday    time.Time `gorm:"type:date;not null" json:"birthday"`
	Email       string    `gorm:"type:varchar(100);uniqueIndex:idx_users_email;not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Password    string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
