package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/pkg/resp"
	"github.com/joveey/sistem-bk-online/services"
	"github.com/joveey/sistem-bk-online/utils"
)

type CreateReportRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=online offline"`
	IsAnonymous *bool  `json:"is_anonymous" binding:"required"` // pointer so explicit false passes required
}

type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// POST /reports (students only)
func (rc *ReportController) Create(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	report, err := rc.service.Create(p, req.Title, req.Description, req.Type, *req.IsAnonymous)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, report)
}

// GET /reports
func (rc *ReportController) List(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	reports, err := rc.service.List(p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, reports)
}

// GET /reports/:id
func (rc *ReportController) Detail(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	report, err := rc.service.Detail(p, paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

// PUT /reports/:id/accept (counselor)
func (rc *ReportController) Accept(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	report, err := rc.service.Accept(p, paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

// PUT /reports/:id/schedule (assigned counselor, offline reports)
func (rc *ReportController) Schedule(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	report, err := rc.service.Schedule(p, paramID(c), req.ScheduledAt)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

// PUT /reports/:id/complete (counselor)
func (rc *ReportController) Complete(c *gin.Context) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	report, err := rc.service.Complete(p, paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, report)
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}
