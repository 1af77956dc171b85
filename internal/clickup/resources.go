package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"hr-dashboard-service/internal/domain"
)

// member участник команды. ClickUp отдаёт его как {"user": {...}}, старые ответы как сам User.
type member struct {
	domain.User
}

func (m *member) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.User != nil {
		m.User = *wrapped.User
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &m.User)
}

type wireTeam struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Avatar  string   `json:"avatar"`
	Members []member `json:"members"`
}

func (t wireTeam) toDomain() domain.Team {
	team := domain.Team{
		ID:      t.ID,
		Name:    t.Name,
		Color:   t.Color,
		Avatar:  t.Avatar,
		Members: make([]domain.User, 0, len(t.Members)),
	}
	for _, m := range t.Members {
		team.Members = append(team.Members, m.User)
	}
	return team
}

// AuthorizedUser возвращает владельца токена.
func (c *Client) AuthorizedUser(ctx context.Context) (domain.User, error) {
	var resp struct {
		User domain.User `json:"user"`
	}
	if err := c.get(ctx, "/user", "/user", nil, &resp); err != nil {
		return domain.User{}, err
	}
	return resp.User, nil
}

// Teams возвращает доступные токену рабочие пространства.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	var resp struct {
		Teams []wireTeam `json:"teams"`
	}
	if err := c.get(ctx, "/team", "/team", nil, &resp); err != nil {
		return nil, err
	}
	teams := make([]domain.Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, t.toDomain())
	}
	return teams, nil
}

// TeamMembers возвращает участников команды. Пустой teamID означает команду из конфигурации.
func (c *Client) TeamMembers(ctx context.Context, teamID string) ([]domain.User, error) {
	var resp struct {
		Team wireTeam `json:"team"`
	}
	path := "/team/" + url.PathEscape(c.team(teamID))
	if err := c.get(ctx, "/team/{id}", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Team.toDomain().Members, nil
}

// Spaces возвращает пространства команды.
func (c *Client) Spaces(ctx context.Context, teamID string) ([]domain.Space, error) {
	var resp struct {
		Spaces []domain.Space `json:"spaces"`
	}
	path := "/team/" + url.PathEscape(c.team(teamID)) + "/space"
	if err := c.get(ctx, "/team/{id}/space", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// Space возвращает пространство по ID.
func (c *Client) Space(ctx context.Context, spaceID string) (domain.Space, error) {
	var space domain.Space
	err := c.get(ctx, "/space/{id}", "/space/"+url.PathEscape(spaceID), nil, &space)
	return space, err
}

// Lists возвращает списки пространства без папки.
func (c *Client) Lists(ctx context.Context, spaceID string) ([]domain.List, error) {
	var resp struct {
		Lists []domain.List `json:"lists"`
	}
	path := "/space/" + url.PathEscape(spaceID) + "/list"
	if err := c.get(ctx, "/space/{id}/list", path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// List возвращает список по ID.
func (c *Client) List(ctx context.Context, listID string) (domain.List, error) {
	var list domain.List
	err := c.get(ctx, "/list/{id}", "/list/"+url.PathEscape(listID), nil, &list)
	return list, err
}

// Tasks возвращает задачи списка с учётом фильтра.
func (c *Client) Tasks(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
	var resp struct {
		Tasks []domain.Task `json:"tasks"`
	}
	path := "/list/" + url.PathEscape(listID) + "/task"
	if err := c.get(ctx, "/list/{id}/task", path, EncodeTaskFilter(filter), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Task возвращает задачу по ID.
func (c *Client) Task(ctx context.Context, taskID string) (domain.Task, error) {
	var task domain.Task
	err := c.get(ctx, "/task/{id}", "/task/"+url.PathEscape(taskID), nil, &task)
	return task, err
}

// CreateTask создаёт задачу в списке.
func (c *Client) CreateTask(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, request{
		method:   http.MethodPost,
		endpoint: "/list/{id}/task",
		path:     "/list/" + url.PathEscape(listID) + "/task",
		body:     input,
	}, &task)
	return task, err
}

// UpdateTask частично обновляет задачу.
func (c *Client) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, request{
		method:   http.MethodPut,
		endpoint: "/task/{id}",
		path:     "/task/" + url.PathEscape(taskID),
		body:     input,
	}, &task)
	return task, err
}
