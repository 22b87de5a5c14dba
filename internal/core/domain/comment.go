package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment is a single entry in a movie's comment thread. UserID and Username
// are taken from the author's token claims at creation time, never from the
// request payload.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
	MovieID   string    `json:"movieId" bson:"movie_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// CanBeDeletedBy reports whether the given actor may delete the comment:
// the author always can, and admins can regardless of authorship.
func (c Comment) CanBeDeletedBy(userID, role string) bool {
	return c.UserID == userID || role == RoleAdmin
}
