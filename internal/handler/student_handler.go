package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/edu-admin-api/internal/service"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
	"github.com/edupanel/edu-admin-api/pkg/response"
)

// StudentHandler handles student endpoints.
type StudentHandler struct {
	service *service.StudentService
	export  *service.ExportService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc *service.StudentService, exportSvc *service.ExportService) *StudentHandler {
	return &StudentHandler{service: svc, export: exportSvc}
}

// Create godoc
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} models.Student
// @Failure 400
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid student payload"))
		return
	}
	student, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// List godoc
// @Summary List students with their course joined
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

// AssignCourse godoc
// @Summary Assign a course to a student
// @Description The student id comes from the path when present, otherwise from the body
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.AssignCourseRequest true "Assignment payload"
// @Success 200
// @Failure 404
// @Router /students/{id}/assign [post]
func (h *StudentHandler) AssignCourse(c *gin.Context) {
	var req service.AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	studentID := c.Param("id")
	if studentID == "" {
		studentID = req.StudentID
	}

	if err := h.service.AssignCourse(c.Request.Context(), studentID, req.CourseID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Student assigned to course successfully"})
}

// UpsertMark godoc
// @Summary Add or replace the mark for a subject
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.UpsertMarkRequest true "Mark payload"
// @Success 200
// @Failure 404
// @Router /students/marks [post]
func (h *StudentHandler) UpsertMark(c *gin.Context) {
	var req service.UpsertMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mark payload"))
		return
	}
	student, err := h.service.AddOrUpdateMark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Marks added successfully", "student": student})
}

// DeleteMark godoc
// @Summary Remove the mark for a subject
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.DeleteMarkRequest true "Mark payload"
// @Success 200
// @Failure 404
// @Router /students/marks [delete]
func (h *StudentHandler) DeleteMark(c *gin.Context) {
	var req service.DeleteMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mark payload"))
		return
	}
	student, err := h.service.RemoveMark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Marks deleted successfully", "student": student})
}

// Export godoc
// @Summary Export the student roster
// @Tags Students
// @Produce octet-stream
// @Param format query string false "csv or pdf"
// @Success 200
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	result, err := h.export.Render(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
