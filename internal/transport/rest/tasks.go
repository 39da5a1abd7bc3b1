package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/weektrack-backend/internal/domain"
	"github.com/heartmarshall/weektrack-backend/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	List(ctx context.Context, weekStart string) ([]domain.Task, error)
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Patch(ctx context.Context, taskID uuid.UUID, input task.PatchInput) (*domain.Task, error)
	LogTime(ctx context.Context, taskID uuid.UUID, input task.LogInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID) error
	Entries(ctx context.Context, taskID uuid.UUID) ([]domain.TimeEntry, error)
}

// TaskHandler serves the /tasks endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title         string `json:"title"`
	TargetMinutes int    `json:"targetMinutes"`
	WeekStart     string `json:"weekStart"`
}

type patchTaskRequest struct {
	Title         *string `json:"title"`
	TargetMinutes *int    `json:"targetMinutes"`
}

type logTimeRequest struct {
	Minutes *int `json:"minutes"`
}

type taskResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TargetMinutes int       `json:"targetMinutes"`
	WeekStart     string    `json:"weekStart"`
	TotalLogged   int       `json:"totalLogged"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type entryResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Minutes   int       `json:"minutes"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /tasks?weekStart=YYYY-MM-DD.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context(), r.URL.Query().Get("weekStart"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]taskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateInput{
		Title:         req.Title,
		TargetMinutes: req.TargetMinutes,
		WeekStart:     req.WeekStart,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Patch handles PATCH /tasks/{id}.
func (h *TaskHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	var req patchTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Patch(r.Context(), id, task.PatchInput{
		Title:         req.Title,
		TargetMinutes: req.TargetMinutes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// LogTime handles POST /tasks/{id}/log.
func (h *TaskHandler) LogTime(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	var req logTimeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.LogTime(r.Context(), id, task.LogInput{Minutes: req.Minutes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Entries handles GET /tasks/{id}/entries.
func (h *TaskHandler) Entries(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.Entries(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = entryResponse{
			ID:        e.ID.String(),
			TaskID:    e.TaskID.String(),
			Minutes:   e.Minutes,
			CreatedAt: e.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := taskIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		TargetMinutes: t.TargetMinutes,
		WeekStart:     t.WeekStart,
		TotalLogged:   t.TotalLogged,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
