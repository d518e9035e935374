package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Completed   bool    `json:"completed"`
	DueDate     string  `json:"due_date"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	AssignedTo  string  `json:"assigned_to"`
	UserID      string  `json:"user_id"`
	TaskType    *string `json:"task_type,omitempty"`
	CreatedAt   string  `json:"created_at"`
	Image       *string `json:"image,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
	DueDate     *string `json:"due_date"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty,max=64"`
	TaskType    *string `json:"task_type" binding:"omitempty,oneof=feature bug epic story"`
	Image       *string `json:"image"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
	DueDate     *string `json:"due_date"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty,max=64"`
	TaskType    *string `json:"task_type" binding:"omitempty,oneof=feature bug epic story"`
	Image       *string `json:"image"`
}
