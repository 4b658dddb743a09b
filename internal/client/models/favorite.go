package models

import "time"

// Favorite is a user-to-property bookmark persisted by the server.
// The server joins the property snapshot into list responses; removal is
// addressed by the favorite-record ID, never the property ID.
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
	Property   Property  `json:"property"`
}
