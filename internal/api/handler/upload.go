package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/core/ports"
	"github.com/yourplaces/places-api/internal/infrastructure/storage"
)

// saveUpload stores the "image" multipart part and returns its path. The file
// is written before any service call; it is not rolled back when the request
// later fails.
func saveUpload(c echo.Context, images ports.ImageStore) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, "image is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path, err := images.Save(src, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) || errors.Is(err, storage.ErrImageTooLarge) {
			return "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return "", err
	}
	return path, nil
}
