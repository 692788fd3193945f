package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"clipshelf/internal/application/usecase/abstraction"
	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/presentation"
	"clipshelf/pkg/logger"
)

type ReviewHandler struct {
	reviewer abstraction.Reviewer
	rater    abstraction.Rater
}

func NewReviewHandler(reviewer abstraction.Reviewer, rater abstraction.Rater) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		rater:    rater,
	}
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type replyRequest struct {
	Content string `json:"content"`
}

// reviewListResponse pairs the reviews of a content item with its derived
// rating statistics.
type reviewListResponse struct {
	Reviews []model.Review    `json:"reviews"`
	Summary dto.RatingSummary `json:"summary"`
}

// HandleCreate handles POST /contents/:contentId/reviews requests.
func (h *ReviewHandler) HandleCreate(c echo.Context) error {
	contentID := c.Param(presentation.ContentIDParam)
	if contentID == "" {
		return badRequest(c, "missing content id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return badRequest(c, "rating must be between 1 and 5")
	}

	authorID, authorEmail := callerIdentity(c)

	review, err := h.reviewer.Create(c.Request().Context(), contentID, authorID, authorEmail, req.Rating, req.Comment)
	if err != nil {
		logger.Error("review creation failed", "content_id", contentID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// HandleList handles GET /contents/:contentId/reviews requests. Reviews come
// back newest first; the store itself guarantees no order.
func (h *ReviewHandler) HandleList(c echo.Context) error {
	contentID := c.Param(presentation.ContentIDParam)
	if contentID == "" {
		return badRequest(c, "missing content id")
	}

	reviews, err := h.reviewer.ListForContent(c.Request().Context(), contentID)
	if err != nil {
		logger.Error("review listing failed", "content_id", contentID, "err", err)

		return writeError(c, err)
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	summary, err := h.rater.AverageRating(c.Request().Context(), contentID)
	if err != nil {
		return writeError(c, err)
	}

	if reviews == nil {
		reviews = []model.Review{}
	}

	return c.JSON(http.StatusOK, reviewListResponse{
		Reviews: reviews,
		Summary: summary,
	})
}

// HandleUpdate handles PATCH /reviews/:reviewId requests.
func (h *ReviewHandler) HandleUpdate(c echo.Context) error {
	reviewID := c.Param(presentation.ReviewIDParam)
	if reviewID == "" {
		return badRequest(c, "missing review id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return badRequest(c, "rating must be between 1 and 5")
	}

	actorID, _ := callerIdentity(c)

	review, err := h.reviewer.Update(c.Request().Context(), reviewID, actorID, req.Comment, req.Rating)
	if err != nil {
		logger.Error("review update failed", "review_id", reviewID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, review)
}

// HandleDelete handles DELETE /reviews/:reviewId requests.
func (h *ReviewHandler) HandleDelete(c echo.Context) error {
	reviewID := c.Param(presentation.ReviewIDParam)
	if reviewID == "" {
		return badRequest(c, "missing review id")
	}

	actorID, _ := callerIdentity(c)

	if err := h.reviewer.Delete(c.Request().Context(), reviewID, actorID); err != nil {
		logger.Error("review deletion failed", "review_id", reviewID, "err", err)

		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleReply handles POST /reviews/:reviewId/replies requests.
func (h *ReviewHandler) HandleReply(c echo.Context) error {
	reviewID := c.Param(presentation.ReviewIDParam)
	if reviewID == "" {
		return badRequest(c, "missing review id")
	}

	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return badRequest(c, "reply content must not be empty")
	}

	authorID, authorEmail := callerIdentity(c)

	review, err := h.reviewer.AddReply(c.Request().Context(), reviewID, authorID, authorEmail, req.Content)
	if err != nil {
		logger.Error("reply failed", "review_id", reviewID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}
