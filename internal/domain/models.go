package domain

import "time"

// StatusType отражает таксономию статусов ClickUp.
type StatusType string

const (
	StatusTypeOpen   StatusType = "open"
	StatusTypeCustom StatusType = "custom"
	StatusTypeClosed StatusType = "closed"
	StatusTypeDone   StatusType = "done"
)

// IsActive сообщает, считается ли задача в работе (open или custom).
func (t StatusType) IsActive() bool {
	return t == StatusTypeOpen || t == StatusTypeCustom
}

// User представляет пользователя ClickUp.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Color          string     `json:"color"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Initials       string     `json:"initials"`
	Role           int        `json:"role"`
	CustomRole     CustomRole `json:"custom_role,omitempty"`
	LastActive     Millis     `json:"last_active"`
	DateJoined     Millis     `json:"date_joined"`
	DateInvited    Millis     `json:"date_invited"`
}

// Status описывает статус задачи.
type Status struct {
	ID         string     `json:"id,omitempty"`
	Status     string     `json:"status"`
	Color      string     `json:"color"`
	Type       StatusType `json:"type"`
	OrderIndex int        `json:"orderindex"`
}

// Priority описывает приоритет задачи. В ClickUp приоритет может отсутствовать.
type Priority struct {
	ID         string `json:"id"`
	Priority   string `json:"priority"`
	Color      string `json:"color"`
	OrderIndex string `json:"orderindex"`
}

// Tag описывает тег задачи.
type Tag struct {
	Name    string `json:"name"`
	TagFg   string `json:"tag_fg"`
	TagBg   string `json:"tag_bg"`
	Creator int64  `json:"creator"`
}

// CustomField описывает пользовательское поле задачи.
type CustomField struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    any    `json:"value,omitempty"`
	Required bool   `json:"required"`
}

// ContainerRef ссылка на список, папку или проект, в которых лежит задача.
type ContainerRef struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
	Access bool   `json:"access,omitempty"`
}

// Task представляет задачу ClickUp. В рамках одного прохода агрегации не изменяется.
type Task struct {
	ID           string        `json:"id"`
	CustomID     string        `json:"custom_id,omitempty"`
	Name         string        `json:"name"`
	TextContent  string        `json:"text_content,omitempty"`
	Description  string        `json:"description,omitempty"`
	Status       Status        `json:"status"`
	OrderIndex   string        `json:"orderindex"`
	DateCreated  Millis        `json:"date_created"`
	DateUpdated  Millis        `json:"date_updated"`
	DateClosed   Millis        `json:"date_closed"`
	DateDone     Millis        `json:"date_done"`
	Archived     bool          `json:"archived"`
	Creator      User          `json:"creator"`
	Assignees    []User        `json:"assignees"`
	Watchers     []User        `json:"watchers,omitempty"`
	Tags         []Tag         `json:"tags"`
	Parent       string        `json:"parent,omitempty"`
	Priority     *Priority     `json:"priority"`
	DueDate      Millis        `json:"due_date"`
	StartDate    Millis        `json:"start_date"`
	Points       *float64      `json:"points,omitempty"`
	TimeEstimate *int64        `json:"time_estimate,omitempty"`
	TimeSpent    *int64        `json:"time_spent,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	TeamID       string        `json:"team_id"`
	URL          string        `json:"url"`
	List         ContainerRef  `json:"list"`
	Project      ContainerRef  `json:"project"`
	Folder       ContainerRef  `json:"folder"`
	Space        ContainerRef  `json:"space"`
}

// IsOverdue сообщает, просрочена ли задача: она в работе и срок прошёл относительно now.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status.Type.IsActive() && !t.DueDate.IsZero() && now.After(t.DueDate.Time)
}

// List представляет список задач ClickUp.
type List struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	OrderIndex       int          `json:"orderindex"`
	TaskCount        *int         `json:"task_count,omitempty"`
	DueDate          Millis       `json:"due_date"`
	StartDate        Millis       `json:"start_date"`
	Folder           ContainerRef `json:"folder"`
	Space            ContainerRef `json:"space"`
	Archived         bool         `json:"archived"`
	OverrideStatuses bool         `json:"override_statuses"`
	Statuses         []Status     `json:"statuses,omitempty"`
	PermissionLevel  string       `json:"permission_level,omitempty"`
}

// Space представляет пространство ClickUp (в дашборде считается проектом).
type Space struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Private           bool     `json:"private"`
	Statuses          []Status `json:"statuses,omitempty"`
	MultipleAssignees bool     `json:"multiple_assignees"`
	Archived          bool     `json:"archived"`
}

// Team представляет рабочее пространство (team) ClickUp с участниками.
type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Avatar  string `json:"avatar,omitempty"`
	Members []User `json:"members"`
}

// Workload агрегирует открытые задачи команды.
type Workload struct {
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	OverdueTasks   int            `json:"overdueTasks"`
	ByStatus       map[string]int `json:"tasksByStatus"`
	ByAssignee     map[string]int `json:"tasksByAssignee"`
	ByPriority     map[string]int `json:"tasksByPriority"`
}

// NewWorkload создаёт пустую нагрузку с инициализированными счётчиками.
func NewWorkload() Workload {
	return Workload{
		ByStatus:   map[string]int{},
		ByAssignee: map[string]int{},
		ByPriority: map[string]int{},
	}
}
