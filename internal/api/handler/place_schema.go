package handler

import "github.com/yourplaces/places-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createPlaceForm mirrors the multipart form fields of POST /api/places.
// The image part is handled separately by the handler.
type createPlaceForm struct {
	Title       string `form:"title"       validate:"required"`
	Description string `form:"description" validate:"required,min=5"`
	Address     string `form:"address"     validate:"required"`
	Creator     string `form:"creator"     validate:"required"`
}

type updatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

type placeEnvelope struct {
	Place *domain.Place `json:"place"`
}

type placesEnvelope struct {
	Places []*domain.Place `json:"places"`
}

type messageResponse struct {
	Message string `json:"message"`
}
