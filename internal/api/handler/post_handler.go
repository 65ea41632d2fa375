package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/api/metrics"
	"github.com/inkworks/contentforge/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Save creates a new post owned by the caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      savePostRequest  true  "Post fields"
// @Success      201   {object}  postEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts/save [post]
func (h *PostHandler) Save(c echo.Context) error {
	var req savePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide title and content")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), req.Title, req.Content, identity.UserID)
	if err != nil {
		return err
	}
	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, postEnvelope{Success: true, Data: toPostResponse(post)})
}

// ListMine returns all posts owned by the caller, newest first.
//
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  postListEnvelope
// @Failure      401  {object}  errorResponse
// @Router       /posts/user [get]
func (h *PostHandler) ListMine(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListByAuthor(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postListEnvelope{
		Success: true,
		Count:   len(posts),
		Data:    toPostListResponse(posts),
	})
}

// Get returns a single post by id. Intentionally public: any caller with the
// id may read the post, so generated content can be shared by link.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postEnvelope{Success: true, Data: toPostResponse(post)})
}

// Update applies new title/content to a post owned by the caller.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "New post fields"
// @Success      200   {object}  postEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide title and content")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), identity.UserID, ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postEnvelope{Success: true, Data: toPostResponse(post)})
}

// Delete removes a post owned by the caller.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  deleteEnvelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.UserID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteEnvelope{
		Success: true,
		Data:    map[string]any{},
		Message: "Post deleted successfully",
	})
}
