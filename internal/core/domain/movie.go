package domain

import (
	"errors"
	"time"
)

var ErrMovieNotFound = errors.New("movie not found")
var ErrValidation = errors.New("validation failed")

// Movie is a single catalog item. ID is assigned at creation and never
// changes for the lifetime of the record.
type Movie struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	ReleaseDate time.Time `json:"releaseDate" bson:"release_date"`
	Genre       string    `json:"genre" bson:"genre"`
	Director    string    `json:"director" bson:"director"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	TrailerURL  string    `json:"trailerUrl,omitempty" bson:"trailer_url,omitempty"`
}
