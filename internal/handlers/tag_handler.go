package handlers

import (
	"net/http"

	"tag-ledger/internal/dto"
	"tag-ledger/internal/errors"
	"tag-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// TagHandler handles the tag catalog and the summary read
type TagHandler struct {
	tagService services.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService services.TagServiceInterface) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags returns the caller's tags
// @Router /tags [get]
func (h *TagHandler) ListTags(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	tags, err := h.tagService.ListTags(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: tags,
		Meta: map[string]int{"total": len(tags)},
	})
}

// CreateTag adds a tag to the caller's catalog
// @Router /tags [post]
func (h *TagHandler) CreateTag(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	tag, err := h.tagService.CreateTag(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: tag})
}

// UpdateTag renames or recolors a tag. A rename schedules a summary recompute.
// @Router /tags/{id} [patch]
func (h *TagHandler) UpdateTag(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	tagID, ok := requiredParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.UpdateTagRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if req.Name == nil && req.Color == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("name or color is required"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	tag, err := h.tagService.UpdateTag(c.Request().Context(), userID, tagID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tag})
}

// DeleteTag removes a tag and schedules a summary recompute
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	tagID, ok := requiredParam(c, "id")
	if !ok {
		return SendError(c, errors.ValidationInvalidID)
	}

	if err := h.tagService.DeleteTag(c.Request().Context(), userID, tagID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSummary returns the last written tags summary snapshot
// @Router /tags/summary [get]
func (h *TagHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	snapshot, err := h.tagService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: snapshot})
}
