package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-greenprint/types"
)

const (
	tasksCollection     = "tasks"
	userTasksCollection = "user_tasks"
)

// TaskRepository serves the task catalog and per-user task assignments.
type TaskRepository struct {
	client *firestore.Client
}

func NewTaskRepository(client *firestore.Client) *TaskRepository {
	return &TaskRepository{client: client}
}

// GetAllTasks returns the task catalog, newest first.
func (r *TaskRepository) GetAllTasks(ctx context.Context) ([]types.Task, error) {
	var tasks []types.Task

	iter := r.client.Collection(tasksCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var task types.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, err
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// GetTask returns one catalog entry, or (nil, nil) if it does not exist.
func (r *TaskRepository) GetTask(ctx context.Context, taskID string) (*types.Task, error) {
	doc, err := r.client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var task types.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, err
	}
	task.ID = doc.Ref.ID
	return &task, nil
}

// AssignTaskToUser creates a fresh assignment in the Not Started state.
func (r *TaskRepository) AssignTaskToUser(ctx context.Context, userID, taskID string) (types.UserTask, error) {
	// Make sure the catalog entry actually exists before assigning it.
	task, err := r.GetTask(ctx, taskID)
	if err != nil {
		return types.UserTask{}, err
	}
	if task == nil {
		return types.UserTask{}, fmt.Errorf("task %s not found", taskID)
	}

	assignment := types.UserTask{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    taskID,
		Status:    types.TaskNotStarted,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	_, err = r.client.Collection(userTasksCollection).Doc(assignment.ID).Set(ctx, assignment)
	if err != nil {
		return types.UserTask{}, err
	}

	assignment.Task = task
	return assignment, nil
}

// UpdateTaskStatus moves an assignment through its status machine. A
// non-empty videoURL attaches completion proof at the same time.
func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, userTaskID string, newStatus types.TaskStatus, videoURL string) error {
	updates := []firestore.Update{
		{Path: "status", Value: newStatus},
	}
	if videoURL != "" {
		updates = append(updates, firestore.Update{Path: "video_url", Value: videoURL})
	}

	_, err := r.client.Collection(userTasksCollection).Doc(userTaskID).Update(ctx, updates)
	return err
}

// GetUserTasks returns a user's assignments, newest first, with the
// catalog entry joined onto each one.
func (r *TaskRepository) GetUserTasks(ctx context.Context, userID string) ([]types.UserTask, error) {
	docs, err := r.client.Collection(userTasksCollection).
		Where("user_id", "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	assignments := make([]types.UserTask, 0, len(docs))
	for _, doc := range docs {
		var assignment types.UserTask
		if err := doc.DataTo(&assignment); err != nil {
			return nil, err
		}
		assignment.ID = doc.Ref.ID

		// Join the catalog entry; a deleted task just leaves Task nil.
		task, err := r.GetTask(ctx, assignment.TaskID)
		if err != nil {
			return nil, err
		}
		assignment.Task = task

		assignments = append(assignments, assignment)
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt > assignments[j].CreatedAt
	})
	return assignments, nil
}
