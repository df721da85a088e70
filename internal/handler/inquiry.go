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

// SubmitInquiryRequest has no required fields; only the body's shape is
// checked.
type SubmitInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	PhoneNo string `json:"phoneNo"`
	Message string `json:"message"`
}

type InquiryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	PhoneNo   string    `json:"phoneNo"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type InquiryHandler struct {
	repo repository.InquiryRepository
	log  logrus.FieldLogger
}

func NewInquiryHandler(repo repository.InquiryRepository, log logrus.FieldLogger) *InquiryHandler {
	return &InquiryHandler{repo: repo, log: log.WithField("component", "inquiry")}
}

func (h *InquiryHandler) RegisterRoutes(r *gin.RouterGroup, submit ...gin.HandlerFunc) {
	inquiries := r.Group("/api/inquiries")
	{
		inquiries.POST("", append(submit, h.Submit)...)
		inquiries.GET("", h.List)
	}
}

func toInquiryResponse(i model.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Address:   i.Address,
		PhoneNo:   i.PhoneNo,
		Message:   i.Message,
		CreatedAt: i.CreatedAt,
	}
}

// Submit godoc
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        payload  body      SubmitInquiryRequest      true  "Inquiry"
// @Success      201      {object}  InquiryResponse
// @Failure      400      {object}  validation.ErrorResponse  "Malformed body"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req SubmitInquiryRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	i := model.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		PhoneNo: req.PhoneNo,
		Message: req.Message,
	}

	if err := h.repo.Create(c.Request.Context(), &i); err != nil {
		writeInternalError(c, h.log, err,
			"INQUIRY_CREATE_FAILED",
			"failed to save inquiry",
		)
		return
	}

	c.JSON(http.StatusCreated, toInquiryResponse(i))
}

// List godoc
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Success      200  {array}   InquiryResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /api/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err,
			"INQUIRY_LIST_FAILED",
			"failed to fetch inquiries",
		)
		return
	}

	resp := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, toInquiryResponse(i))
	}

	c.JSON(http.StatusOK, resp)
}
