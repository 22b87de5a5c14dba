package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/cinelog/catalog-api/internal/api/middleware"
	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
	"github.com/cinelog/catalog-api/internal/core/service"
)

type stubMovieService struct {
	listFn   func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Movie, error)
	createFn func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error)
	deleteFn func(ctx context.Context, id string) (*domain.Movie, error)
}

func (s *stubMovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubMovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.getFn(ctx, id)
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	return s.deleteFn(ctx, id)
}

// setActor injects the context values the Auth middleware would have set.
func setActor(c echo.Context, userID, username, role string) {
	c.Set(appmiddleware.CtxUserID, userID)
	c.Set(appmiddleware.CtxUsername, username)
	c.Set(appmiddleware.CtxRole, role)
}

func TestMovieHandler_List_MapsQueryParams(t *testing.T) {
	stub := &stubMovieService{
		listFn: func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
			if input.Search != "blade" || input.Genre != "sci-fi" || input.Page != 2 || input.Limit != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListMoviesResult{
				Movies:      []domain.Movie{{ID: "m1", Title: "Blade Runner"}},
				CurrentPage: 2,
				TotalPages:  3,
				TotalMovies: 11,
				Limit:       5,
			}, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/movies?search=blade&genre=sci-fi&page=2&limit=5", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["currentPage"] != float64(2) || resp["totalPages"] != float64(3) ||
		resp["totalMovies"] != float64(11) || resp["limit"] != float64(5) {
		t.Fatalf("unexpected pagination metadata: %+v", resp)
	}
	movies, ok := resp["movies"].([]any)
	if !ok || len(movies) != 1 {
		t.Fatalf("expected one movie, got %v", resp["movies"])
	}
}

func TestMovieHandler_List_Defaults(t *testing.T) {
	stub := &stubMovieService{
		listFn: func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
			if input.Page != 1 || input.Limit != service.DefaultPageSize {
				t.Fatalf("expected defaults, got page=%d limit=%d", input.Page, input.Limit)
			}
			return &ports.ListMoviesResult{CurrentPage: 1, Limit: input.Limit}, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/movies?page=oops", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// An empty page must still serialize movies as [], never null.
	if !strings.Contains(rec.Body.String(), `"movies":[]`) {
		t.Fatalf("expected empty movies array, got %s", rec.Body.String())
	}
}

func TestMovieHandler_Get_NotFound(t *testing.T) {
	stub := &stubMovieService{
		getFn: func(ctx context.Context, id string) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	handler := NewMovieHandler(stub, nil)

	c, _ := newTestContext(t, http.MethodGet, "/movies/m404", "")
	c.SetParamNames("id")
	c.SetParamValues("m404")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieHandler_Create_Success(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			want := time.Date(1994, 9, 23, 0, 0, 0, 0, time.UTC)
			if input.Title != "The Shawshank Redemption" || !input.ReleaseDate.Equal(want) {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Movie{
				ID:    "m1",
				Title: input.Title,
				Genre: input.Genre,
			}, nil
		},
	}
	audit := &stubAudit{}
	handler := NewMovieHandler(stub, audit)

	body := `{"title":"The Shawshank Redemption","description":"Two imprisoned men bond.",` +
		`"releaseDate":"1994-09-23","genre":"Drama","director":"Frank Darabont"}`
	c, rec := newTestContext(t, http.MethodPost, "/movies", body)
	setActor(c, "admin-1", "root", domain.RoleAdmin)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != "movie.create" || entry.Actor != "admin-1" || entry.Resource != "m1" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
}

func TestMovieHandler_Create_MissingClaims(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	c, _ := newTestContext(t, http.MethodPost, "/movies", `{}`)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMovieHandler_Create_BadReleaseDate(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	body := `{"title":"X","description":"Y","releaseDate":"next tuesday","genre":"Drama","director":"Z"}`
	c, _ := newTestContext(t, http.MethodPost, "/movies", body)
	setActor(c, "admin-1", "root", domain.RoleAdmin)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestMovieHandler_Create_MissingRequiredField(t *testing.T) {
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	body := `{"description":"Y","releaseDate":"1994-09-23","genre":"Drama","director":"Z"}`
	c, _ := newTestContext(t, http.MethodPost, "/movies", body)
	setActor(c, "admin-1", "root", domain.RoleAdmin)

	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestMovieHandler_Update_PartialFields(t *testing.T) {
	stub := &stubMovieService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
			if id != "m1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Title == nil || *input.Title != "New Title" {
				t.Fatalf("expected title update, got %+v", input)
			}
			if input.Description != nil || input.Genre != nil || input.ReleaseDate != nil {
				t.Fatalf("expected untouched fields to stay nil: %+v", input)
			}
			return &domain.Movie{ID: id, Title: *input.Title}, nil
		},
	}
	handler := NewMovieHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodPut, "/movies/m1", `{"title":"New Title"}`)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	setActor(c, "admin-1", "root", domain.RoleAdmin)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovieHandler_Delete_ReturnsRecord(t *testing.T) {
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id string) (*domain.Movie, error) {
			return &domain.Movie{ID: id, Title: "Gone"}, nil
		},
	}
	audit := &stubAudit{}
	handler := NewMovieHandler(stub, audit)

	c, rec := newTestContext(t, http.MethodDelete, "/movies/m1", "")
	c.SetParamNames("id")
	c.SetParamValues("m1")
	setActor(c, "admin-1", "root", domain.RoleAdmin)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"Gone"`) {
		t.Fatalf("expected deleted record in body, got %s", rec.Body.String())
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != "movie.delete" {
		t.Fatalf("expected movie.delete audit entry, got %+v", audit.entries)
	}
}
