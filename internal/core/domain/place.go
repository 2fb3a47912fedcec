package domain

import "errors"

var ErrPlaceNotFound = errors.New("place not found")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrAddressUnresolvable = errors.New("could not resolve address")
var ErrGeocoderUnavailable = errors.New("geocoding service unavailable")
var ErrTransactionAborted = errors.New("transaction aborted")

// Coordinates represents a geographic point resolved from a free-text address.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Place is a user-created record describing a physical location. Creator holds
// the owning user's id; the owning user's Places list must always contain this
// place's id (see the transactional writes in the service layer).
type Place struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Address     string      `json:"address" bson:"address"`
	Location    Coordinates `json:"location" bson:"location"`
	Image       string      `json:"image" bson:"image"`
	Creator     string      `json:"creator" bson:"creator"`
}
