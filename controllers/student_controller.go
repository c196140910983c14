package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/joveey/sistem-bk-online/pkg/resp"
	"github.com/joveey/sistem-bk-online/services"
)

type StudentRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Class      string `json:"class" binding:"required,max=255"`
	UniqueCode string `json:"unique_code" binding:"required,max=255"`
}

// StudentController is the counselor-facing student administration. Role
// enforcement happens in the route group middleware.
type StudentController struct {
	service *services.StudentService
}

func NewStudentController(service *services.StudentService) *StudentController {
	return &StudentController{service: service}
}

// GET /students
func (sc *StudentController) List(c *gin.Context) {
	students, err := sc.service.List()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, students)
}

// POST /students
func (sc *StudentController) Create(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	student, err := sc.service.Create(req.Name, req.Class, req.UniqueCode)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, student)
}

// GET /students/:id
func (sc *StudentController) Detail(c *gin.Context) {
	student, err := sc.service.Get(paramID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, student)
}

// PUT /students/:id
func (sc *StudentController) Update(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BindError(c, err)
		return
	}

	student, err := sc.service.Update(paramID(c), req.Name, req.Class, req.UniqueCode)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, student)
}

// DELETE /students/:id
func (sc *StudentController) Delete(c *gin.Context) {
	if err := sc.service.Delete(paramID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "student deleted"})
}
