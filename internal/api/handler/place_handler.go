package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service ports.PlaceService
	images  ports.ImageStore
}

func NewPlaceHandler(service ports.PlaceService, images ports.ImageStore) *PlaceHandler {
	return &PlaceHandler{service: service, images: images}
}

// Create handles POST /api/places.
//
// @Summary      Create a new place
// @Tags         places
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true  "Place title"
// @Param        description  formData  string  true  "Description (min 5 characters)"
// @Param        address      formData  string  true  "Free-text address, geocoded server-side"
// @Param        creator      formData  string  true  "Creator user id"
// @Param        image        formData  file    true  "Place image (png/jpeg, max 500 KB)"
// @Success      201  {object}  placeEnvelope
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	form := createPlaceForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Address:     c.FormValue("address"),
		Creator:     c.FormValue("creator"),
	}
	if err := c.Validate(form); err != nil {
		return err
	}

	imagePath, err := saveUpload(c, h.images)
	if err != nil {
		return err
	}

	place, err := h.service.CreatePlace(c.Request().Context(), ports.CreatePlaceInput{
		Title:       form.Title,
		Description: form.Description,
		Address:     form.Address,
		CreatorID:   form.Creator,
		ImagePath:   imagePath,
	})
	if err != nil {
		return err
	}

	metrics.PlacesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, placeEnvelope{Place: place})
}

// Get handles GET /api/places/:pid.
//
// @Summary      Get a place by id
// @Tags         places
// @Produce      json
// @Param        pid  path      string  true  "Place id"
// @Success      200  {object}  placeEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /api/places/{pid} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	place, err := h.service.GetPlace(c.Request().Context(), c.Param("pid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placeEnvelope{Place: place})
}

// ListByUser handles GET /api/places/user/:uid.
//
// @Summary      List a user's places
// @Tags         places
// @Produce      json
// @Param        uid  path      string  true  "User id"
// @Success      200  {object}  placesEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /api/places/user/{uid} [get]
func (h *PlaceHandler) ListByUser(c echo.Context) error {
	places, err := h.service.ListPlacesByUser(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placesEnvelope{Places: places})
}

// Update handles PATCH /api/places/:pid.
//
// @Summary      Update a place's title and description
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        pid   path      string              true  "Place id"
// @Param        body  body      updatePlaceRequest  true  "New field values"
// @Success      200   {object}  placeEnvelope
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/places/{pid} [patch]
func (h *PlaceHandler) Update(c echo.Context) error {
	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	place, err := h.service.UpdatePlace(c.Request().Context(), ports.UpdatePlaceInput{
		PlaceID:     c.Param("pid"),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placeEnvelope{Place: place})
}

// Delete handles DELETE /api/places/:pid.
//
// @Summary      Delete a place
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        pid  path      string  true  "Place id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/places/{pid} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePlace(c.Request().Context(), c.Param("pid")); err != nil {
		return err
	}

	metrics.PlacesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted place."})
}

