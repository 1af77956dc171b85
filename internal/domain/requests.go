package domain

import "time"

// TaskFilter параметры выборки задач списка. Незаданные поля не попадают в запрос.
type TaskFilter struct {
	Archived      *bool
	Page          *int
	OrderBy       string
	Reverse       *bool
	Subtasks      *bool
	Statuses      []string
	IncludeClosed *bool
	Assignees     []string
	Tags          []string
	DueDateGt     *time.Time
	DueDateLt     *time.Time
	DateCreatedGt *time.Time
	DateCreatedLt *time.Time
	DateUpdatedGt *time.Time
	DateUpdatedLt *time.Time
}

// EmployeeTasksOptions параметры выборки задач сотрудника по всем спискам.
type EmployeeTasksOptions struct {
	IncludeCompleted bool
	Start            time.Time
	End              time.Time
}

// CustomFieldValue значение пользовательского поля при создании задачи.
type CustomFieldValue struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// CreateTaskInput тело запроса создания задачи.
type CreateTaskInput struct {
	Name                      string             `json:"name"`
	Description               string             `json:"description,omitempty"`
	Assignees                 []int64            `json:"assignees,omitempty"`
	Tags                      []string           `json:"tags,omitempty"`
	Status                    string             `json:"status,omitempty"`
	Priority                  *int               `json:"priority,omitempty"`
	DueDate                   *int64             `json:"due_date,omitempty"`
	DueDateTime               *bool              `json:"due_date_time,omitempty"`
	TimeEstimate              *int64             `json:"time_estimate,omitempty"`
	StartDate                 *int64             `json:"start_date,omitempty"`
	StartDateTime             *bool              `json:"start_date_time,omitempty"`
	NotifyAll                 *bool              `json:"notify_all,omitempty"`
	Parent                    string             `json:"parent,omitempty"`
	LinksTo                   string             `json:"links_to,omitempty"`
	CheckRequiredCustomFields *bool              `json:"check_required_custom_fields,omitempty"`
	CustomFields              []CustomFieldValue `json:"custom_fields,omitempty"`
}

// UpdateTaskInput тело запроса обновления задачи.
type UpdateTaskInput struct {
	Name         *string         `json:"name,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Status       *string         `json:"status,omitempty"`
	Priority     *int            `json:"priority,omitempty"`
	DueDate      *int64          `json:"due_date,omitempty"`
	DueDateTime  *bool           `json:"due_date_time,omitempty"`
	Parent       *string         `json:"parent,omitempty"`
	TimeEstimate *int64          `json:"time_estimate,omitempty"`
	Archived     *bool           `json:"archived,omitempty"`
	Assignees    *AssigneesPatch `json:"assignees,omitempty"`
}

// AssigneesPatch добавляет и снимает исполнителей задачи.
type AssigneesPatch struct {
	Add []int64 `json:"add,omitempty"`
	Rem []int64 `json:"rem,omitempty"`
}
