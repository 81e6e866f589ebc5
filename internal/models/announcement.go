package models

import "time"

// Announcement lives in its own table rather than embedded in the
// organization row, so the feed can be paginated and never hits a
// per-document size ceiling.
type Announcement struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null;index" json:"organization_id"`
	AuthorID       uint64    `gorm:"not null" json:"author_id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Content        string    `gorm:"type:text" json:"content"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
