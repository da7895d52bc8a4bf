package models

type Friend struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewFriend is the creation payload. It binds from either a JSON or a
// URL-encoded form body; the store assigns the id on insert.
type NewFriend struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required"`
}
