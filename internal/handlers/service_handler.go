package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/httpresp"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
	ucService "github.com/serenitylabs/medspa-scheduler/internal/usecase/service"
)

type ServiceHandler struct {
	uc *ucService.UseCases
}

func NewServiceHandler(uc *ucService.UseCases) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Duration    *int    `json:"duration"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request_body", err.Error())
		return
	}

	service, err := h.uc.Create(c.Request.Context(), c.Param("medspa_id"), ucService.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.uc.Get(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) ListByMedspa(c *gin.Context) {
	page := pagination.FromQuery(c)

	items, nextCursor, err := h.uc.ListByMedspa(c.Request.Context(), c.Param("medspa_id"), page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated[models.Service](c, items, nextCursor, page.Limit)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request_body", err.Error())
		return
	}

	service, err := h.uc.Update(c.Request.Context(), c.Param("service_id"), ucService.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, service)
}
