package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dayheat/internal/adapter/http/dto"
	"dayheat/internal/adapter/http/mapper"
	"dayheat/internal/adapter/http/middleware"
	"dayheat/internal/adapter/http/validation"
	"dayheat/internal/core/domain"
	"dayheat/internal/core/ports"
	"dayheat/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	rawDate := c.Query("date")
	if rawDate == "" {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgDateRequired, lang))
		return
	}
	date, err := time.ParseInLocation(domain.DateLayout, rawDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgDateRequired, lang))
		return
	}

	tasks, completed, err := h.taskService.ListTasks(c.Request.Context(), date)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("date", rawDate), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, dto.DayTasksResponse{
		Tasks:     mapper.ToTaskItems(tasks),
		Completed: completed,
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.String("date", req.Date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailCreateTask, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskID, lang))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}
	completed, err := validation.ParseCompletedField(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.SetTaskCompleted(c.Request.Context(), taskID, completed)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateTask, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskID, lang))
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailDeleteTask, lang))
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{Success: true})
}
