// Package entity contains the core business objects of the project.
package entity

import "time"

// Comment is a single guestbook entry. Author and CreatedAt never change after creation.
type Comment struct {
	ID        string     `json:"id"`                  // Store-assigned opaque identifier.
	Author    string     `json:"author"`              // Display name supplied by the submitter.
	Content   string     `json:"content"`             // Comment body, replaceable by the admin.
	CreatedAt time.Time  `json:"createdAt"`           // Set once at creation.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"` // Set on every admin edit, absent otherwise.
}
