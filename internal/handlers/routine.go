package handlers

import (
	"errors"
	"net/http"

	"Tracker/internal/auth"
	"Tracker/internal/dates"
	dom "Tracker/internal/domain"
	"Tracker/internal/dto"
	"Tracker/internal/schedule"
	"Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type RoutineHandler struct {
	svc *service.RoutineService
}

func NewRoutineHandler(svc *service.RoutineService) *RoutineHandler {
	return &RoutineHandler{svc: svc}
}

// Create godoc
// @Summary      Create a routine
// @Description  The schedule is validated rule by rule; the response carries
// @Description  the first failing rule's message only.
// @Tags         routines
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateRoutineRequest  true  "Routine body"
// @Success      201   {object}  dto.RoutineResponse
// @Failure      400   {object}  map[string]string
// @Router       /routines [post]
func (h *RoutineHandler) Create(c *gin.Context) {
	var req dto.CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	rt, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c),
		req.Title, dom.Priority(req.Priority), req.CategoryID,
		scheduleInput(req.Schedule), isActive, req.StartDate.Ptr(), req.EndDate.Ptr())
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routineToResponse(rt))
}

// List godoc
// @Summary      List routines
// @Tags         routines
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListRoutinesResponse
// @Failure      500  {object}  map[string]string
// @Router       /routines [get]
func (h *RoutineHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.RoutineResponse, len(list))
	for i := range list {
		out[i] = routineToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListRoutinesResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a routine by ID
// @Tags         routines
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Routine ID"
// @Success      200  {object}  dto.RoutineResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /routines/{id} [get]
func (h *RoutineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rt, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, routineToResponse(rt))
}

// Update godoc
// @Summary      Update a routine
// @Tags         routines
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Routine ID"
// @Param        body  body      dto.UpdateRoutineRequest  true  "Partial update"
// @Success      200   {object}  dto.RoutineResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /routines/{id} [patch]
func (h *RoutineHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var priority *dom.Priority
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		priority = &p
	}
	var in *schedule.Input
	if req.Schedule != nil {
		v := scheduleInput(*req.Schedule)
		in = &v
	}
	var start, end *dates.Date
	setStart := req.StartDate != nil
	if setStart {
		start = req.StartDate.Ptr()
	}
	setEnd := req.EndDate != nil
	if setEnd {
		end = req.EndDate.Ptr()
	}
	rt, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id,
		req.Title, priority, req.CategoryID, in, req.IsActive, start, end, setStart, setEnd)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, routineToResponse(rt))
}

// Activate godoc
// @Summary      Toggle a routine's active flag
// @Tags         routines
// @Produce      json
// @Security     CookieAuth
// @Param        id      path   int     true   "Routine ID"
// @Param        active  query  bool    false  "defaults to true"
// @Success      200  {object}  dto.RoutineResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /routines/{id}/activate [post]
func (h *RoutineHandler) Activate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	active := c.DefaultQuery("active", "true") != "false"
	rt, err := h.svc.SetActive(c.Request.Context(), auth.UserIDFromContext(c), id, active)
	if err != nil {
		respondRoutineError(c, err)
		return
	}
	c.JSON(http.StatusOK, routineToResponse(rt))
}

// Delete godoc
// @Summary      Delete a routine
// @Tags         routines
// @Security     CookieAuth
// @Param        id   path  int  true  "Routine ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /routines/{id} [delete]
func (h *RoutineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func respondRoutineError(c *gin.Context, err error) {
	var verr *schedule.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func scheduleInput(req dto.ScheduleRequest) schedule.Input {
	return schedule.Input{
		RecurrenceType: req.RecurrenceType,
		Interval:       req.Interval,
		DaysOfWeek:     req.DaysOfWeek,
		DayOfMonth:     req.DayOfMonth,
		Time:           req.Time,
	}
}

func routineToResponse(rt dom.Routine) dto.RoutineResponse {
	s := rt.Schedule
	sched := dto.ScheduleResponse{
		RecurrenceType: string(s.Kind()),
		Description:    s.Describe(),
	}
	switch s.Kind() {
	case schedule.Weekly:
		sched.DaysOfWeek = s.DaysOfWeek()
	case schedule.Monthly:
		d := s.DayOfMonth()
		sched.DayOfMonth = &d
	case schedule.Custom:
		n := s.Interval()
		sched.Interval = &n
	}
	if at, ok := s.At(); ok {
		sched.Time = &at
	}
	resp := dto.RoutineResponse{
		ID:         rt.ID,
		Title:      rt.Title,
		Priority:   string(rt.Priority),
		CategoryID: rt.CategoryID,
		Schedule:   sched,
		IsActive:   rt.IsActive,
		CreatedAt:  rt.CreatedAt,
		UpdatedAt:  rt.UpdatedAt,
	}
	if rt.StartDate != nil {
		v := rt.StartDate.String()
		resp.StartDate = &v
	}
	if rt.EndDate != nil {
		v := rt.EndDate.String()
		resp.EndDate = &v
	}
	return resp
}
