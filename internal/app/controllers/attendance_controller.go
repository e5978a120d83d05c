package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/app/services"
	"github.com/yosefd/rollbook/internal/middleware"
)

// AttendanceController handles daily and session attendance operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
	reportService     *services.ReportService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, reportService *services.ReportService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// SaveDailyAttendance applies a daily attendance batch
// @Summary Save daily attendance
// @Description Applies a batch of daily presence records. Present records are upserted, absent records are removed. A malformed record rejects the whole batch before any write.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.DailyRecordRequest true "Daily attendance records"
// @Success 201 {object} dto.APIResponse{data=dto.SaveDailyResponse} "Attendance saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/save-attendance [post]
func (c *AttendanceController) SaveDailyAttendance(ctx *gin.Context) {
	var records []dto.DailyRecordRequest
	if err := ctx.ShouldBindJSON(&records); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid attendance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.attendanceService.SaveDailyBatch(ctx, records)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SaveDailyResponse{
			Message: "Attendance saved successfully",
			Count:   count,
		},
		Timestamp: time.Now(),
	})
}

// GetAttendance retrieves one month of daily attendance rows
// @Summary Get monthly attendance
// @Description Retrieves daily attendance rows for a month, optionally filtered to one student. Pass studentId=all (or omit it) for every student.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Student ID or 'all'"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.APIResponse{data=[]dto.DailyRecordResponse} "Attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/get-attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid month")
		errorDetail = errorDetail.WithDetails("month must be a number between 1 and 12")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		errorDetail = errorDetail.WithDetails("year must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetMonth(ctx, ctx.Query("studentId"), month, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.DailyRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.DailyRecordResponse{
			StudentID: record.StudentID,
			Present:   record.Present,
			Date:      record.Date.Format("2006-01-02"),
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// DeleteAttendance removes one daily attendance row
// @Summary Delete an attendance row
// @Description Removes one daily attendance row by student ID and date. Returns 404 when no row exists for that key.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId query string true "Student ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse "Attendance deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/delete [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	err := c.attendanceService.DeleteDaily(ctx, ctx.Query("studentId"), ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Attendance deleted successfully",
		Timestamp: time.Now(),
	})
}

// GetMonthlySummary reports per-student present-day counts for a month
// @Summary Get monthly attendance summary
// @Description Aggregates one month of daily attendance into per-student present-day counts, sorted by student ID.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Success 200 {object} dto.APIResponse{data=[]services.StudentMonthSummary} "Summary retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendances/summary [get]
func (c *AttendanceController) GetMonthlySummary(ctx *gin.Context) {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid month")
		errorDetail = errorDetail.WithDetails("month must be a number between 1 and 12")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		errorDetail = errorDetail.WithDetails("year must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetMonth(ctx, "all", month, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.reportService.MonthlySummary(records),
		Timestamp: time.Now(),
	})
}

// SaveSessionAttendance applies a session (slot) attendance batch
// @Summary Save session attendance
// @Description Upserts one session document per student for the given date, replacing any prior document for the same student and date. The response carries present counts per scheduled slot.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveSessionRequest true "Session attendance batch"
// @Success 200 {object} dto.APIResponse{data=dto.SaveSessionResponse} "Session attendance saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid session data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Tattendances/save-attendance [post]
func (c *AttendanceController) SaveSessionAttendance(ctx *gin.Context) {
	var req dto.SaveSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.attendanceService.SaveSessionBatch(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SaveSessionResponse{
			Message: "Session attendance saved successfully",
			Count:   count,
			Counts:  c.reportService.PresentCounts(req.Schedule, req.Attendance),
		},
		Timestamp: time.Now(),
	})
}

// GetSessionAttendance retrieves all session documents for a date
// @Summary Get session attendance by date
// @Description Retrieves every student's session document recorded for the given date.
// @Tags attendances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.SessionAttendance} "Session attendance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /Tattendances/get-attendance [get]
func (c *AttendanceController) GetSessionAttendance(ctx *gin.Context) {
	docs, err := c.attendanceService.GetSessionsByDate(ctx, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docs,
		Timestamp: time.Now(),
	})
}
