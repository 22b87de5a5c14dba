package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cinelog/catalog-api/internal/api/metrics"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment threads.
type CommentHandler struct {
	service ports.CommentService
	audit   AuditDispatcher
}

func NewCommentHandler(service ports.CommentService, audit AuditDispatcher) *CommentHandler {
	return &CommentHandler{service: service, audit: audit}
}

// ListByMovie handles GET /comments/movie/:movieId — public.
//
// @Summary      List comments for a movie
// @Tags         comments
// @Produce      json
// @Param        movieId  path      string  true  "Movie id"
// @Success      200      {array}   domain.Comment
// @Failure      500      {object}  errorResponse
// @Router       /comments/movie/{movieId} [get]
func (h *CommentHandler) ListByMovie(c echo.Context) error {
	comments, err := h.service.ListByMovie(c.Request().Context(), c.Param("movieId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Create handles POST /comments (any authenticated user). The author
// identity comes from the token claims, not the payload.
//
// @Summary      Post a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		MovieID:    req.MovieID,
		Text:       req.Text,
		AuthorID:   actor.UserID,
		AuthorName: actor.Username,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	recordAudit(h.audit, actor.UserID, "comment.create", comment.ID)
	return c.JSON(http.StatusCreated, comment)
}

// Delete handles DELETE /comments/:id — the author or an admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  domain.Comment
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Delete(c.Request().Context(), ports.DeleteCommentInput{
		CommentID: c.Param("id"),
		ActorID:   actor.UserID,
		ActorRole: actor.Role,
	})
	if err != nil {
		return err
	}

	recordAudit(h.audit, actor.UserID, "comment.delete", comment.ID)
	return c.JSON(http.StatusOK, comment)
}
