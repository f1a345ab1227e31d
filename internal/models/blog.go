package models

import "time"

// Blog represents a single post. AuthorEmail is a denormalized copy of the
// owning user's email taken at creation time; there is no foreign key, so
// deleting a user does not cascade and a blog may outlive its author.
type Blog struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail" gorm:"index;type:varchar(255)"`
	Views       int64     `json:"views" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
