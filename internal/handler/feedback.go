package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/model"
	"github.com/snnyvrz/bookstore/internal/repository"
	"github.com/snnyvrz/bookstore/internal/validation"
)

type SubmitFeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type FeedbackResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedOn time.Time `json:"submittedOn"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type FeedbackHandler struct {
	repo repository.FeedbackRepository
	log  logrus.FieldLogger
}

func NewFeedbackHandler(repo repository.FeedbackRepository, log logrus.FieldLogger) *FeedbackHandler {
	return &FeedbackHandler{repo: repo, log: log.WithField("component", "feedback")}
}

// RegisterRoutes mounts the feedback routes. submit runs in front of the
// POST handler only.
func (h *FeedbackHandler) RegisterRoutes(r *gin.RouterGroup, submit ...gin.HandlerFunc) {
	r.POST("/feedback", append(submit, h.Submit)...)
	r.GET("/feedback", h.List)
}

// Submit godoc
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        payload  body      SubmitFeedbackRequest     true  "Feedback"
// @Success      201      {object}  MessageResponse
// @Failure      400      {object}  validation.ErrorResponse  "Validation error"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	f := model.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.repo.Create(c.Request.Context(), &f); err != nil {
		writeInternalError(c, h.log, err,
			"FEEDBACK_CREATE_FAILED",
			"failed to submit feedback",
		)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Feedback submitted successfully"})
}

// List godoc
// @Summary      List feedback
// @Description  All feedback, oldest first
// @Tags         feedback
// @Produce      json
// @Success      200  {array}   FeedbackResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err,
			"FEEDBACK_LIST_FAILED",
			"failed to fetch feedback",
		)
		return
	}

	resp := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		resp = append(resp, FeedbackResponse{
			ID:          f.ID,
			Name:        f.Name,
			Email:       f.Email,
			Message:     f.Message,
			SubmittedOn: f.SubmittedOn,
		})
	}

	c.JSON(http.StatusOK, resp)
}
