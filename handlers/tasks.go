package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-greenprint/db"
	"go-greenprint/types"
)

// GetTasks returns the full task catalog.
func GetTasks(c *gin.Context, repo *db.TaskRepository) {
	tasks, err := repo.GetAllTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// AssignTask assigns a catalog task to a user.
func AssignTask(c *gin.Context, repo *db.TaskRepository) {
	var request struct {
		UserID string `json:"user_id" binding:"required"`
		TaskID string `json:"task_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := repo.AssignTaskToUser(c.Request.Context(), request.UserID, request.TaskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// UpdateTaskStatus moves an assignment to a new status. Completing with
// a video URL attaches the proof; approving awards the task's points.
func UpdateTaskStatus(c *gin.Context, taskRepo *db.TaskRepository, pointsRepo *db.PointsRepository) {
	userTaskID := c.Param("userTaskID")

	var request struct {
		UserID   string           `json:"user_id" binding:"required"`
		Status   types.TaskStatus `json:"status" binding:"required"`
		VideoURL string           `json:"video_url"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := taskRepo.UpdateTaskStatus(c.Request.Context(), userTaskID, request.Status, request.VideoURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Approval is the only transition that awards points.
	if request.Status == types.TaskApproved {
		assignments, err := taskRepo.GetUserTasks(c.Request.Context(), request.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, assignment := range assignments {
			if assignment.ID != userTaskID || assignment.Task == nil {
				continue
			}
			entry, err := pointsRepo.AddPoints(c.Request.Context(), request.UserID, assignment.Task.Points, "task: "+assignment.Task.Title)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Task approved", "points_awarded": entry.Points})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task status updated"})
}

// GetUserTasks returns a user's assignments with their catalog entries.
func GetUserTasks(c *gin.Context, repo *db.TaskRepository) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
		return
	}

	assignments, err := repo.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_tasks": assignments})
}
