package models

import "time"

// CommunityRequest is a public help request. IDs are UUID strings.
type CommunityRequest struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time        `gorm:"index" json:"createdAt"`
	Replies     []CommunityReply `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"replies"`
}

// TableName specifies the table name for CommunityRequest model
func (CommunityRequest) TableName() string {
	return "community_requests"
}

// CommunityReply is appended to a request; replies keep insertion order
type CommunityReply struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	RequestID string    `gorm:"size:36;not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for CommunityReply model
func (CommunityReply) TableName() string {
	return "community_replies"
}
