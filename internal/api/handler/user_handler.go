package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service ports.UserService
	images  ports.ImageStore
}

func NewUserHandler(service ports.UserService, images ports.ImageStore) *UserHandler {
	return &UserHandler{service: service, images: images}
}

// signupForm mirrors the multipart form fields of POST /api/users/signup.
type signupForm struct {
	Name     string `form:"name"     validate:"required"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type usersEnvelope struct {
	Users []*domain.User `json:"users"`
}

// Signup handles POST /api/users/signup.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true  "Display name"
// @Param        email     formData  string  true  "Email, globally unique"
// @Param        password  formData  string  true  "Password (min 6 characters)"
// @Param        image     formData  file    true  "Avatar image (png/jpeg, max 500 KB)"
// @Success      201  {object}  authResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	form := signupForm{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := c.Validate(form); err != nil {
		return err
	}

	imagePath, err := saveUpload(c, h.images)
	if err != nil {
		return err
	}

	token, user, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Name:      form.Name,
		Email:     form.Email,
		Password:  form.Password,
		ImagePath: imagePath,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /api/users/login.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersEnvelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersEnvelope{Users: users})
}
