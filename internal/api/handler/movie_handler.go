package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cinelog/catalog-api/internal/api/metrics"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	service ports.MovieService
	audit   AuditDispatcher
}

func NewMovieHandler(service ports.MovieService, audit AuditDispatcher) *MovieHandler {
	return &MovieHandler{service: service, audit: audit}
}

// List handles GET /movies — the public catalog page.
//
// @Summary      List movies with search, genre filter and pagination
// @Tags         movies
// @Produce      json
// @Param        search  query     string  false  "Substring match on title or description"
// @Param        genre   query     string  false  "Exact genre, case-insensitive"
// @Param        page    query     int     false  "1-based page number"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listMoviesResponse
// @Failure      500     {object}  errorResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.CatalogQueryDuration)
	defer timer.ObserveDuration()

	result, err := h.service.List(c.Request().Context(), toListInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Create handles POST /movies (admin only).
//
// @Summary      Add a movie to the catalog
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  domain.Movie
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toCreateInput(req)
	if err != nil {
		return err
	}

	movie, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.MoviesCreatedTotal.WithLabelValues(movie.Genre).Inc()
	recordAudit(h.audit, actor.UserID, "movie.create", movie.ID)
	return c.JSON(http.StatusCreated, movie)
}

// Update handles PUT /movies/:id (admin only). Partial semantics: only
// supplied fields change.
//
// @Summary      Update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Movie id"
// @Param        body  body      updateMovieRequest  true  "Fields to change"
// @Success      200   {object}  domain.Movie
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toUpdateInput(req)
	if err != nil {
		return err
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	recordAudit(h.audit, actor.UserID, "movie.update", movie.ID)
	return c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:id (admin only). Returns the deleted record.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	movie, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	recordAudit(h.audit, actor.UserID, "movie.delete", movie.ID)
	return c.JSON(http.StatusOK, movie)
}
