package handlers

import (
	"net/http"
	"strconv"

	"Tracker/internal/auth"
	"Tracker/internal/dates"
	dom "Tracker/internal/domain"
	"Tracker/internal/dto"
	"Tracker/internal/service"
	"Tracker/internal/status"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc   *service.TaskService
	clock dates.Clock
}

func NewTaskHandler(svc *service.TaskService, clock dates.Clock) *TaskHandler {
	return &TaskHandler{svc: svc, clock: clock}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	t, err := h.svc.Create(c.Request.Context(), userID, req.Title, req.Description,
		dom.Priority(req.Priority), req.CategoryID, req.DueDate.Ptr())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t, h.clock.Today()))
}

// List godoc
// @Summary      List tasks
// @Description  Optionally filter by status bucket and sort by due date.
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        status  query  string  false  "overdue|due-today|due-soon|future|completed"
// @Param        sort    query  string  false  "due_asc|due_desc"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure     500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	today := h.clock.Today()

	if want := status.Status(c.Query("status")); want != status.None {
		var filtered []dom.Task
		for _, t := range list {
			if status.Classify(t.DueDate, t.IsDone, today) == want {
				filtered = append(filtered, t)
			}
		}
		list = filtered
	}
	switch c.Query("sort") {
	case "due_asc":
		status.SortByDueDate(list, false)
	case "due_desc":
		status.SortByDueDate(list, true)
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(list, today)})
}

// GetByID godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.clock.Today()))
}

// Update godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var priority *dom.Priority
	if req.Priority != nil {
		p := dom.Priority(*req.Priority)
		priority = &p
	}
	var due *dates.Date
	setDue := req.DueDate != nil
	if setDue {
		due = req.DueDate.Ptr()
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id,
		req.Title, req.Description, priority, req.CategoryID, due, setDue, req.IsDone)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.clock.Today()))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Security     CookieAuth
// @Param        id   path  int  true  "Task ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
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

// Complete godoc
// @Summary      Mark a task as done
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Complete(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t, h.clock.Today()))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func taskToResponse(t dom.Task, today dates.Date) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		CategoryID:  t.CategoryID,
		IsDone:      t.IsDone,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		s := t.DueDate.String()
		resp.DueDate = &s
	}
	st := status.Classify(t.DueDate, t.IsDone, today)
	if st != status.None {
		resp.Status = string(st)
		resp.StatusText = status.Text(t.DueDate, t.IsDone, today)
		resp.StatusColor = status.ColorClass(st)
	}
	return resp
}

func tasksToResponses(list []dom.Task, today dates.Date) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i], today)
	}
	return out
}
