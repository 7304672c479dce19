package types

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskApproved   TaskStatus = "Approved"
)

type TaskDifficulty string

const (
	TaskEasy   TaskDifficulty = "Easy"
	TaskMedium TaskDifficulty = "Medium"
	TaskHard   TaskDifficulty = "Hard"
)

// Task is a catalog entry users can take on to earn points.
type Task struct {
	ID           string         `firestore:"-" json:"id"`
	Title        string         `firestore:"title" json:"title"`
	Description  string         `firestore:"description" json:"description"`
	TaskType     TaskDifficulty `firestore:"task_type" json:"task_type"`
	Points       int64          `firestore:"points" json:"points"`
	CO2Impact    float64        `firestore:"co2_impact" json:"co2_impact"`
	EnergyImpact float64        `firestore:"energy_impact" json:"energy_impact"`
	WaterImpact  float64        `firestore:"water_impact" json:"water_impact"`
	Frequency    string         `firestore:"frequency" json:"frequency"` // Daily, Weekly, Monthly, Seasonal
	CreatedAt    string         `firestore:"created_at" json:"created_at"`
}

// UserTask is one user's assignment of a catalog task, with its own
// completion status and optional proof video URL.
type UserTask struct {
	ID        string     `firestore:"-" json:"id"`
	UserID    string     `firestore:"user_id" json:"user_id"`
	TaskID    string     `firestore:"task_id" json:"task_id"`
	Status    TaskStatus `firestore:"status" json:"status"`
	VideoURL  string     `firestore:"video_url,omitempty" json:"video_url,omitempty"`
	CreatedAt string     `firestore:"created_at" json:"created_at"`

	// Task carries the joined catalog entry on reads; it is not stored on
	// the assignment document itself.
	Task *Task `firestore:"-" json:"task,omitempty"`
}
