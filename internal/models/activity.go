package models

import (
	"time"
)

// ActivityType tags the kind of action an activity records.
// The set is open-ended; these are the types the service emits today.
type ActivityType string

const (
	ActivitySignup     ActivityType = "signup"
	ActivityPost       ActivityType = "post"
	ActivityLike       ActivityType = "like"
	ActivityFollow     ActivityType = "follow"
	ActivityDeleteUser ActivityType = "delete_user"
	ActivityDeletePost ActivityType = "delete_post"
)

// Activity is an append-only audit record of a notable action. Rows are
// never mutated or deleted; actor/target/post references may outlive the
// entities they point at.
type Activity struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Type         ActivityType `gorm:"type:varchar(32);not null;index" json:"type"`
	ActorID      *uint        `json:"actor_id,omitempty"`
	TargetUserID *uint        `json:"target_user_id,omitempty"`
	PostID       *uint        `json:"post_id,omitempty"`
	Message      string       `gorm:"not null" json:"message"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`

	Actor      *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	TargetUser *User `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
}

// TableName specifies the table name for GORM
func (Activity) TableName() string {
	return "activities"
}
