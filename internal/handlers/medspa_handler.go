package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/httpresp"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
	ucMedspa "github.com/serenitylabs/medspa-scheduler/internal/usecase/medspa"
)

type MedspaHandler struct {
	uc *ucMedspa.UseCases
}

func NewMedspaHandler(uc *ucMedspa.UseCases) *MedspaHandler {
	return &MedspaHandler{uc: uc}
}

type CreateMedspaRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (h *MedspaHandler) Create(c *gin.Context) {
	var req CreateMedspaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request_body", err.Error())
		return
	}

	medspa, err := h.uc.Create(c.Request.Context(), ucMedspa.CreateInput{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, medspa)
}

func (h *MedspaHandler) Get(c *gin.Context) {
	medspa, err := h.uc.Get(c.Request.Context(), c.Param("medspa_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, medspa)
}

func (h *MedspaHandler) List(c *gin.Context) {
	page := pagination.FromQuery(c)

	items, nextCursor, err := h.uc.List(c.Request.Context(), page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated[models.Medspa](c, items, nextCursor, page.Limit)
}
