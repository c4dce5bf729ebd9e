package handlers

import (
	"net/http"
	"strings"

	"brain-backend/internal/auth"
	"brain-backend/internal/database/models"
	apperrors "brain-backend/internal/errors"
	"brain-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContentHandler handles HTTP requests for the caller's content items
type ContentHandler struct {
	contentService service.ContentServiceInterface
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService service.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// UpdateContentRequest replaces every editable field of the item named by ContentID
type UpdateContentRequest struct {
	ContentID string `json:"contentId" example:"0b8f5c8e-3c1a-4a57-9b64-1f1f0a5d2c11"`
	service.ContentRequest
}

// DeleteContentRequest names the item to delete
type DeleteContentRequest struct {
	ContentID string `json:"contentId" example:"0b8f5c8e-3c1a-4a57-9b64-1f1f0a5d2c11"`
}

// ContentResponse wraps a single content item
type ContentResponse struct {
	Message string          `json:"message" example:"Content added successfully"`
	Content *models.Content `json:"content"`
}

// ContentListResponse wraps the caller's content items
type ContentListResponse struct {
	Content []models.Content `json:"content"`
}

// TagListResponse lists distinct tags
type TagListResponse struct {
	Tags []string `json:"tags" example:"go,reading"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Content deleted successfully"`
}

// filterFromQuery reads search, tags (comma separated) and type
func filterFromQuery(c *gin.Context) (service.ContentFilter, error) {
	filter := service.ContentFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Type:   models.ContentType(strings.TrimSpace(c.Query("type"))),
	}
	if raw := c.Query("tags"); raw != "" {
		filter.Tags = service.NormalizeTags(strings.Split(raw, ","))
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return filter, apperrors.NewValidationError("type", "must be one of: document tweet youtube link")
	}
	return filter, nil
}

// parseContentID returns false after writing the response when the id is unusable.
// A malformed id cannot name an existing item, so it is reported as not found.
func parseContentID(c *gin.Context, raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "contentId is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Content not found"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateContent handles POST /content
// @Summary Add a content item
// @Description Save a link, tweet, video or markdown document to the caller's brain
// @Tags content
// @Accept json
// @Produce json
// @Param content body service.ContentRequest true "Content data"
// @Success 201 {object} ContentResponse "Content added"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req service.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	content, err := h.contentService.CreateContent(c, userID, &req)
	if err != nil {
		respondError(c, err, "Error adding content")
		return
	}

	c.JSON(http.StatusCreated, ContentResponse{Message: "Content added successfully", Content: content})
}

// ListContent handles GET /content
// @Summary List the caller's content
// @Description Get every content item owned by the caller, oldest first, optionally filtered
// @Tags content
// @Produce json
// @Param search query string false "Case-insensitive title substring"
// @Param tags query string false "Comma separated tags; matches items with any of them"
// @Param type query string false "Content type" Enums(document, tweet, youtube, link)
// @Success 200 {object} ContentListResponse "Caller's content"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		respondError(c, err, "Error fetching content")
		return
	}

	items, err := h.contentService.ListContent(c, userID, filter)
	if err != nil {
		respondError(c, err, "Error fetching content")
		return
	}

	c.JSON(http.StatusOK, ContentListResponse{Content: items})
}

// ListTags handles GET /content/tags
// @Summary List the caller's tags
// @Description Get the distinct tags used across the caller's content, sorted
// @Tags content
// @Produce json
// @Success 200 {object} TagListResponse "Distinct tags"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /content/tags [get]
func (h *ContentHandler) ListTags(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	tags, err := h.contentService.ListTags(c, userID)
	if err != nil {
		respondError(c, err, "Error fetching tags")
		return
	}

	c.JSON(http.StatusOK, TagListResponse{Tags: tags})
}

// UpdateContent handles PUT /content
// @Summary Replace a content item
// @Description Overwrite the fields of one of the caller's items. Items owned by others are reported as not found.
// @Tags content
// @Accept json
// @Produce json
// @Param content body UpdateContentRequest true "Content id and new fields"
// @Success 200 {object} ContentResponse "Content updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Content not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /content [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	contentID, ok := parseContentID(c, req.ContentID)
	if !ok {
		return
	}

	content, err := h.contentService.UpdateContent(c, userID, contentID, &req.ContentRequest)
	if err != nil {
		respondError(c, err, "Error updating content")
		return
	}

	c.JSON(http.StatusOK, ContentResponse{Message: "Content updated successfully", Content: content})
}

// DeleteContent handles DELETE /content
// @Summary Delete a content item
// @Description Remove one of the caller's items. Items owned by others are reported as not found.
// @Tags content
// @Accept json
// @Produce json
// @Param content body DeleteContentRequest true "Content id"
// @Success 200 {object} MessageResponse "Content deleted"
// @Failure 400 {object} ErrorResponse "Missing content id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Content not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /content [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req DeleteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "contentId is required", Error: err.Error()})
		return
	}

	contentID, ok := parseContentID(c, req.ContentID)
	if !ok {
		return
	}

	if err := h.contentService.DeleteContent(c, userID, contentID); err != nil {
		respondError(c, err, "Error deleting content")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Content deleted successfully"})
}
