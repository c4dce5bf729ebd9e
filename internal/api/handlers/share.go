package handlers

import (
	"errors"
	"io"
	"net/http"

	"brain-backend/internal/auth"
	"brain-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShareHandler handles enabling, disabling and resolving share links
type ShareHandler struct {
	shareService service.ShareServiceInterface
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService service.ShareServiceInterface) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// SetSharing handles POST /brain/share
// @Summary Enable or disable the caller's share link
// @Description share=true returns the caller's token, creating it on first use. share=false (or a missing field) removes it.
// @Tags share
// @Accept json
// @Produce json
// @Param request body service.ShareRequest true "Desired sharing state"
// @Success 200 {object} service.ShareLinkResponse "Sharing enabled"
// @Success 200 {object} MessageResponse "Sharing disabled"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /brain/share [post]
func (h *ShareHandler) SetSharing(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req service.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}

	if req.Share {
		link, err := h.shareService.Enable(c, userID)
		if err != nil {
			respondError(c, err, "Error creating share link")
			return
		}
		c.JSON(http.StatusOK, service.ShareLinkResponse{Hash: link.Hash})
		return
	}

	if _, err := h.shareService.Disable(c, userID); err != nil {
		respondError(c, err, "Error removing share link")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Removed link"})
}

// GetSharingStatus handles GET /brain/share
// @Summary Get the caller's sharing state
// @Description Report whether the caller's brain is shared and the current token, without changing anything
// @Tags share
// @Produce json
// @Success 200 {object} service.ShareStatusResponse "Sharing state"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /brain/share [get]
func (h *ShareHandler) GetSharingStatus(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	status, err := h.shareService.Status(c, userID)
	if err != nil {
		respondError(c, err, "Error fetching share status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetSharedBrain handles GET /brain/:shareLink
// @Summary View a shared brain
// @Description Public read-only view of the owner's username and current content. Accepts the same filters as GET /content.
// @Tags share
// @Produce json
// @Param shareLink path string true "Share token"
// @Param search query string false "Case-insensitive title substring"
// @Param tags query string false "Comma separated tags; matches items with any of them"
// @Param type query string false "Content type" Enums(document, tweet, youtube, link)
// @Success 200 {object} service.SharedBrainResponse "Shared content"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Share link not found or has expired"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /brain/{shareLink} [get]
func (h *ShareHandler) GetSharedBrain(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		respondError(c, err, "Error fetching shared content")
		return
	}

	brain, err := h.shareService.Resolve(c, c.Param("shareLink"), filter)
	if err != nil {
		respondError(c, err, "Error fetching shared content")
		return
	}

	c.JSON(http.StatusOK, brain)
}
