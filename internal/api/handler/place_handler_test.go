package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/api"
	"github.com/yourplaces/places-api/internal/api/handler"
	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubPlaceService struct {
	createFn func(ctx context.Context, input ports.CreatePlaceInput) (*domain.Place, error)
	getFn    func(ctx context.Context, placeID string) (*domain.Place, error)
	listFn   func(ctx context.Context, userID string) ([]*domain.Place, error)
	updateFn func(ctx context.Context, input ports.UpdatePlaceInput) (*domain.Place, error)
	deleteFn func(ctx context.Context, placeID string) error
}

func (s *stubPlaceService) CreatePlace(ctx context.Context, input ports.CreatePlaceInput) (*domain.Place, error) {
	return s.createFn(ctx, input)
}

func (s *stubPlaceService) GetPlace(ctx context.Context, placeID string) (*domain.Place, error) {
	return s.getFn(ctx, placeID)
}

func (s *stubPlaceService) ListPlacesByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	return s.listFn(ctx, userID)
}

func (s *stubPlaceService) UpdatePlace(ctx context.Context, input ports.UpdatePlaceInput) (*domain.Place, error) {
	return s.updateFn(ctx, input)
}

func (s *stubPlaceService) DeletePlace(ctx context.Context, placeID string) error {
	return s.deleteFn(ctx, placeID)
}

type stubImages struct {
	saved int
}

func (s *stubImages) Save(src io.Reader, mimeType string) (string, error) {
	_, _ = io.Copy(io.Discard, src)
	s.saved++
	return fmt.Sprintf("uploads/images/test-%d.png", s.saved), nil
}

func (s *stubImages) Remove(string) error { return nil }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newEcho(t *testing.T, svc ports.PlaceService, images ports.ImageStore) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewPlaceHandler(svc, images)
	e.POST("/api/places", h.Create)
	e.GET("/api/places/:pid", h.Get)
	e.GET("/api/places/user/:uid", h.ListByUser)
	e.PATCH("/api/places/:pid", h.Update)
	e.DELETE("/api/places/:pid", h.Delete)
	return e
}

// multipartPlace builds a create-place form with an attached fake png.
func multipartPlace(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="p.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte("fake png bytes"))

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func empireStateFields() map[string]string {
	return map[string]string{
		"title":       "Empire State",
		"description": "A tall building",
		"address":     "350 5th Ave, NYC",
		"creator":     "u1",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestPlaceHandler_Create_Success(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(_ context.Context, input ports.CreatePlaceInput) (*domain.Place, error) {
			if input.Title != "Empire State" || input.CreatorID != "u1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ImagePath == "" {
				t.Fatal("expected stored image path in input")
			}
			return &domain.Place{
				ID:          "p1",
				Title:       input.Title,
				Description: input.Description,
				Address:     input.Address,
				Location:    domain.Coordinates{Lat: 40.7484, Lng: -73.9857},
				Image:       input.ImagePath,
				Creator:     input.CreatorID,
			}, nil
		},
	}
	images := &stubImages{}
	e := newEcho(t, svc, images)

	body, contentType := multipartPlace(t, empireStateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/places", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if images.saved != 1 {
		t.Errorf("expected one stored image, got %d", images.saved)
	}

	var resp struct {
		Place domain.Place `json:"place"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Place.ID != "p1" {
		t.Errorf("expected place id p1, got %q", resp.Place.ID)
	}
	if resp.Place.Location.Lat != 40.7484 || resp.Place.Location.Lng != -73.9857 {
		t.Errorf("unexpected location: %+v", resp.Place.Location)
	}
}

func TestPlaceHandler_Create_UnknownCreatorIs404(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(context.Context, ports.CreatePlaceInput) (*domain.Place, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	e := newEcho(t, svc, &stubImages{})

	fields := empireStateFields()
	fields["creator"] = "ghost"
	body, contentType := multipartPlace(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/places", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPlaceHandler_Create_UnresolvableAddressIs422(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(context.Context, ports.CreatePlaceInput) (*domain.Place, error) {
			return nil, domain.ErrAddressUnresolvable
		},
	}
	e := newEcho(t, svc, &stubImages{})

	body, contentType := multipartPlace(t, empireStateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/places", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPlaceHandler_Create_ShortDescriptionIs422(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(context.Context, ports.CreatePlaceInput) (*domain.Place, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	fields := empireStateFields()
	fields["description"] = "tiny"
	body, contentType := multipartPlace(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/places", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPlaceHandler_Create_MissingImageIs422(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(context.Context, ports.CreatePlaceInput) (*domain.Place, error) {
			t.Fatal("service must not be called without an image")
			return nil, nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range empireStateFields() {
		_ = w.WriteField(k, v)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/places", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPlaceHandler_Create_TransactionFailureIs500(t *testing.T) {
	svc := &stubPlaceService{
		createFn: func(context.Context, ports.CreatePlaceInput) (*domain.Place, error) {
			return nil, fmt.Errorf("%w: write conflict", domain.ErrTransactionAborted)
		},
	}
	e := newEcho(t, svc, &stubImages{})

	body, contentType := multipartPlace(t, empireStateFields())
	req := httptest.NewRequest(http.MethodPost, "/api/places", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func TestPlaceHandler_Get_Success(t *testing.T) {
	svc := &stubPlaceService{
		getFn: func(_ context.Context, placeID string) (*domain.Place, error) {
			return &domain.Place{ID: placeID, Title: "Empire State", Creator: "u1"}, nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	req := httptest.NewRequest(http.MethodGet, "/api/places/p1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Empire State"`) {
		t.Errorf("response missing place: %s", rec.Body)
	}
}

func TestPlaceHandler_Get_NotFound(t *testing.T) {
	svc := &stubPlaceService{
		getFn: func(context.Context, string) (*domain.Place, error) {
			return nil, domain.ErrPlaceNotFound
		},
	}
	e := newEcho(t, svc, &stubImages{})

	req := httptest.NewRequest(http.MethodGet, "/api/places/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPlaceHandler_ListByUser_UnknownUserIs404(t *testing.T) {
	svc := &stubPlaceService{
		listFn: func(context.Context, string) ([]*domain.Place, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	e := newEcho(t, svc, &stubImages{})

	req := httptest.NewRequest(http.MethodGet, "/api/places/user/ghost", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestPlaceHandler_Update_Success(t *testing.T) {
	svc := &stubPlaceService{
		updateFn: func(_ context.Context, input ports.UpdatePlaceInput) (*domain.Place, error) {
			if input.PlaceID != "p1" || input.Title != "ESB" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Place{ID: input.PlaceID, Title: input.Title, Description: input.Description}, nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	body := strings.NewReader(`{"title":"ESB","description":"Still a tall building"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/places/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
}

func TestPlaceHandler_Update_ShortDescriptionIs422(t *testing.T) {
	svc := &stubPlaceService{
		updateFn: func(context.Context, ports.UpdatePlaceInput) (*domain.Place, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	body := strings.NewReader(`{"title":"ESB","description":"nah"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/places/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestPlaceHandler_Delete_Success(t *testing.T) {
	svc := &stubPlaceService{
		deleteFn: func(_ context.Context, placeID string) error {
			if placeID != "p1" {
				t.Fatalf("unexpected place id: %s", placeID)
			}
			return nil
		},
	}
	e := newEcho(t, svc, &stubImages{})

	req := httptest.NewRequest(http.MethodDelete, "/api/places/p1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Deleted place.") {
		t.Errorf("unexpected body: %s", rec.Body)
	}
}

func TestPlaceHandler_Delete_NotFound(t *testing.T) {
	svc := &stubPlaceService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrPlaceNotFound
		},
	}
	e := newEcho(t, svc, &stubImages{})

	req := httptest.NewRequest(http.MethodDelete, "/api/places/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
