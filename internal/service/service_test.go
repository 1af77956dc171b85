package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	trm "github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/require"

	"hr-dashboard-service/internal/config"
	"hr-dashboard-service/internal/domain"
	"hr-dashboard-service/internal/infrastructure/nower"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestService_EmployeeTaskStats_ComputesWindow(t *testing.T) {
	t.Parallel()

	past := domain.MillisOf(testNow.Add(-24 * time.Hour))
	fake := &fakeGateway{
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			require.Equal(t, "7", userID)
			require.True(t, opts.IncludeCompleted)
			require.Equal(t, testNow.AddDate(0, 0, -30), opts.Start)
			require.Equal(t, testNow, opts.End)
			return []domain.Task{
				{Status: domain.Status{Type: domain.StatusTypeClosed}},
				{Status: domain.Status{Type: domain.StatusTypeOpen}, DueDate: past},
				{Status: domain.Status{Type: domain.StatusTypeCustom}},
				{Status: domain.Status{Type: domain.StatusTypeDone}},
			}, nil
		},
	}

	svc := newTestService(fake, nil)
	stats := svc.EmployeeTaskStats(context.Background(), "7", 0)
	require.Equal(t, domain.TaskStats{Total: 4, Completed: 1, InProgress: 2, Overdue: 1}, stats)
}

func TestService_EmployeeTaskStats_SwallowsFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			return nil, errors.New("clickup down")
		},
	}

	svc := newTestService(fake, nil)
	require.Equal(t, domain.TaskStats{}, svc.EmployeeTaskStats(context.Background(), "7", 14))
}

func TestService_Employees_IsolatesFailingMember(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			require.Equal(t, "team-1", teamID)
			return []domain.User{
				{ID: 1, Username: "alice", CustomRole: "HR Manager"},
				{ID: 2, Username: "bob"},
				{ID: 3, Username: "carol", CustomRole: "Backend Developer"},
			}, nil
		},
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			if userID == "2" {
				return nil, errors.New("boom")
			}
			return []domain.Task{{Status: domain.Status{Type: domain.StatusTypeClosed}}}, nil
		},
	}

	svc := newTestService(fake, nil)
	employees, err := svc.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 3)

	require.Equal(t, "alice", employees[0].Username)
	require.Equal(t, "Human Resources", employees[0].Department)
	require.Equal(t, "HR Manager", employees[0].Position)
	require.Equal(t, 1, employees[0].TaskStats.Completed)

	require.Equal(t, domain.TaskStats{}, employees[1].TaskStats)
	require.Equal(t, "General", employees[1].Department)
	require.Equal(t, "Team Member", employees[1].Position)

	require.Equal(t, "Engineering", employees[2].Department)
}

func TestService_Employees_MembersFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return nil, errors.New("unauthorized")
		},
	}

	svc := newTestService(fake, nil)
	_, err := svc.Employees(context.Background())
	require.ErrorIs(t, err, domain.ErrFetchEmployees)
}

func TestService_Employee_NotFound(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return []domain.User{{ID: 1}}, nil
		},
	}

	svc := newTestService(fake, nil)
	_, err := svc.Employee(context.Background(), "99")
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	employee, err := svc.Employee(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, int64(1), employee.ID)
}

func TestService_DashboardSummary_Composes(t *testing.T) {
	t.Parallel()

	created := domain.MillisOf(testNow.Add(-72 * time.Hour))
	closed := domain.MillisOf(testNow.Add(-24 * time.Hour))
	fake := dashboardGateway()
	fake.tasksFn = func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
		require.Equal(t, "date_updated", filter.OrderBy)
		require.NotNil(t, filter.Reverse)
		require.True(t, *filter.Reverse)
		return []domain.Task{{
			ID:          "recent-" + listID,
			DateCreated: created,
			DateClosed:  closed,
			DateUpdated: closed,
		}}, nil
	}

	store := &fakeSnapshotStore{}
	svc := newTestService(fake, store)
	summary, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, summary.TotalEmployees)
	require.Equal(t, 20, summary.TaskSummary.TotalTasks)
	require.Equal(t, 5, summary.TaskSummary.CompletedTasks)
	require.Equal(t, 15, summary.TaskSummary.InProgressTasks)
	require.Equal(t, 3, summary.TaskSummary.OverdueTasks)
	require.Equal(t, map[string]int{"urgent": 2, "none": 18}, summary.TaskSummary.TasksByPriority)
	require.NotNil(t, summary.TaskSummary.AverageCompletionTime)
	require.Equal(t, 2.0, *summary.TaskSummary.AverageCompletionTime)

	require.Len(t, summary.TeamMetrics, 1)
	team := summary.TeamMetrics[0]
	require.Equal(t, "team-1", team.TeamID)
	require.Equal(t, "HR Team", team.TeamName)
	require.Equal(t, 2, team.MemberCount)
	require.Equal(t, 1, team.ActiveProjects)
	require.Equal(t, 25, team.CompletionRate)
	require.Equal(t, domain.WorkloadModerate, team.Workload)
	require.Len(t, team.TopPerformers, 2)
	require.Len(t, summary.RecentActivity, 1)
	require.Equal(t, testNow, summary.GeneratedAt)

	require.Len(t, store.dashboards, 1)
	require.Equal(t, 25, store.dashboards[0].CompletionRate)
	require.Equal(t, testNow, store.dashboards[0].CreatedAt)
}

func TestService_DashboardSummary_PropagatesWorkloadFailure(t *testing.T) {
	t.Parallel()

	fake := dashboardGateway()
	fake.teamWorkloadFn = func(ctx context.Context, teamID string) (domain.Workload, error) {
		return domain.Workload{}, errors.New("rate limited")
	}

	svc := newTestService(fake, nil)
	_, err := svc.DashboardSummary(context.Background())
	require.ErrorIs(t, err, domain.ErrFetchDashboard)
	require.EqualError(t, err, "failed to fetch dashboard data: team workload: rate limited")
}

func TestService_DashboardSummary_PropagatesMembersFailure(t *testing.T) {
	t.Parallel()

	fake := dashboardGateway()
	fake.teamMembersFn = func(ctx context.Context, teamID string) ([]domain.User, error) {
		return nil, errors.New("unauthorized")
	}

	svc := newTestService(fake, nil)
	_, err := svc.DashboardSummary(context.Background())
	require.ErrorIs(t, err, domain.ErrFetchDashboard)
	require.ErrorIs(t, err, domain.ErrFetchEmployees)
}

func TestService_DashboardSummary_SnapshotFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	store := &fakeSnapshotStore{saveErr: errors.New("db down")}
	svc := newTestService(dashboardGateway(), store)
	_, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)
}

func TestService_RecentTasks_BoundsAndSwallows(t *testing.T) {
	t.Parallel()

	var (
		mu        sync.Mutex
		listCalls []string
	)
	fake := &fakeGateway{
		spacesFn: func(ctx context.Context, teamID string) ([]domain.Space, error) {
			return []domain.Space{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}, {ID: "s4"}}, nil
		},
		listsFn: func(ctx context.Context, spaceID string) ([]domain.List, error) {
			lists := make([]domain.List, 0, 7)
			for i := 0; i < 7; i++ {
				lists = append(lists, domain.List{ID: spaceID + "-l" + strconv.Itoa(i)})
			}
			return lists, nil
		},
		tasksFn: func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
			mu.Lock()
			listCalls = append(listCalls, listID)
			mu.Unlock()
			tasks := make([]domain.Task, 0, 8)
			for i := 0; i < 8; i++ {
				tasks = append(tasks, domain.Task{ID: listID + "-t" + strconv.Itoa(i)})
			}
			return tasks, nil
		},
	}

	svc := newTestService(fake, nil)
	tasks := svc.RecentTasks(context.Background(), 100)
	require.Len(t, listCalls, 15)
	require.Len(t, tasks, 75)

	fake.spacesFn = func(ctx context.Context, teamID string) ([]domain.Space, error) {
		return nil, errors.New("boom")
	}
	tasks = svc.RecentTasks(context.Background(), 10)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

func TestService_PerformanceReport(t *testing.T) {
	t.Parallel()

	created := domain.MillisOf(testNow.Add(-96 * time.Hour))
	closed := domain.MillisOf(testNow.Add(-48 * time.Hour))
	past := domain.MillisOf(testNow.Add(-time.Hour))
	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return []domain.User{{ID: 5, Username: "dana", CustomRole: "Sales Lead"}}, nil
		},
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			require.Equal(t, testNow.AddDate(0, 0, -7), opts.Start)
			return []domain.Task{
				{Status: domain.Status{Type: domain.StatusTypeClosed}, DateCreated: created, DateClosed: closed},
				{Status: domain.Status{Type: domain.StatusTypeClosed}, DateCreated: created, DateClosed: closed},
				{Status: domain.Status{Type: domain.StatusTypeClosed}, DateCreated: created, DateClosed: closed},
				{Status: domain.Status{Type: domain.StatusTypeOpen}, DueDate: past},
			}, nil
		},
	}

	store := &fakeSnapshotStore{}
	svc := newTestService(fake, store)
	report, err := svc.PerformanceReport(context.Background(), "5", 7)
	require.NoError(t, err)
	require.Equal(t, "Sales", report.Employee.Department)
	require.Equal(t, 3, report.TasksCompleted)
	require.Equal(t, 2.0, report.AverageCompletionTime)
	// 3/4*100 - 1/4*50 = 62.5
	require.Equal(t, 63, report.ProductivityScore)
	require.Len(t, report.RecentTasks, 4)
	require.Equal(t, 7, report.WindowDays)

	require.Len(t, store.performances, 1)
	require.Equal(t, "5", store.performances[0].UserID)
	require.Equal(t, 63, store.performances[0].ProductivityScore)
}

func TestService_PerformanceReport_ZeroTasks(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return []domain.User{{ID: 5}}, nil
		},
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			return nil, nil
		},
	}

	svc := newTestService(fake, nil)
	report, err := svc.PerformanceReport(context.Background(), "5", 0)
	require.NoError(t, err)
	require.Zero(t, report.TasksCompleted)
	require.Zero(t, report.AverageCompletionTime)
	require.Zero(t, report.ProductivityScore)
	require.NotNil(t, report.RecentTasks)
	require.Equal(t, 30, report.WindowDays)
}

func TestService_PerformanceReport_Errors(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return []domain.User{{ID: 5}}, nil
		},
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			return nil, errors.New("timeout")
		},
	}

	svc := newTestService(fake, nil)
	_, err := svc.PerformanceReport(context.Background(), "5", 30)
	require.ErrorIs(t, err, domain.ErrPerformanceReport)

	_, err = svc.PerformanceReport(context.Background(), "6", 30)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestService_ListTasks(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		tasksFn: func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
			require.Equal(t, "l1", listID)
			return []domain.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}

	svc := newTestService(fake, nil)
	tasks, err := svc.ListTasks(context.Background(), "l1", domain.TaskFilter{}, 2)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	tasks, err = svc.ListTasks(context.Background(), "l1", domain.TaskFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	_, err = svc.ListTasks(context.Background(), "", domain.TaskFilter{}, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.EqualError(t, err, "listId is required")

	fake.tasksFn = func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
		return nil, errors.New("boom")
	}
	_, err = svc.ListTasks(context.Background(), "l1", domain.TaskFilter{}, 0)
	require.ErrorIs(t, err, domain.ErrFetchTasks)
}

func TestService_CreateAndUpdateTask(t *testing.T) {
	t.Parallel()

	fake := &fakeGateway{
		createTaskFn: func(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error) {
			return domain.Task{ID: "new", Name: input.Name}, nil
		},
		updateTaskFn: func(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
			return domain.Task{ID: taskID, Name: *input.Name}, nil
		},
	}
	svc := newTestService(fake, nil)

	_, err := svc.CreateTask(context.Background(), "l1", domain.CreateTaskInput{Name: "  "})
	require.EqualError(t, err, "Task name is required")

	priority := 9
	_, err = svc.CreateTask(context.Background(), "l1", domain.CreateTaskInput{Name: "x", Priority: &priority})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	task, err := svc.CreateTask(context.Background(), "l1", domain.CreateTaskInput{Name: "Review contracts"})
	require.NoError(t, err)
	require.Equal(t, "Review contracts", task.Name)

	name := "Renamed"
	task, err = svc.UpdateTask(context.Background(), "t1", domain.UpdateTaskInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Renamed", task.Name)

	_, err = svc.UpdateTask(context.Background(), "", domain.UpdateTaskInput{})
	require.EqualError(t, err, "taskId is required")

	fake.updateTaskFn = func(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
		return domain.Task{}, errors.New("404")
	}
	_, err = svc.UpdateTask(context.Background(), "t1", domain.UpdateTaskInput{})
	require.ErrorIs(t, err, domain.ErrUpdateTask)
}

func TestService_ReportHistory(t *testing.T) {
	t.Parallel()

	store := &fakeSnapshotStore{
		history: []domain.PerformanceSnapshot{{ID: "s1", UserID: "5"}},
	}
	svc := newTestService(&fakeGateway{}, store)

	history, err := svc.ReportHistory(context.Background(), "5", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, defaultHistoryLimit, store.lastLimit)

	_, err = svc.ReportHistory(context.Background(), "5", 1000)
	require.NoError(t, err)
	require.Equal(t, maxHistoryLimit, store.lastLimit)

	_, err = svc.ReportHistory(context.Background(), "", 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	noStore := newTestService(&fakeGateway{}, nil)
	history, err = noStore.ReportHistory(context.Background(), "5", 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestService_HealthCheck(t *testing.T) {
	t.Parallel()

	store := &fakeSnapshotStore{}
	svc := newTestService(&fakeGateway{}, store)
	require.NoError(t, svc.HealthCheck(context.Background()))
	require.Equal(t, 1, store.pings)

	store.pingErr = errors.New("db down")
	require.EqualError(t, svc.HealthCheck(context.Background()), "db down")

	cfg := testConfig()
	cfg.ClickUp.HealthCheck = true
	offline := New(&fakeGateway{connected: false}, nil, cfg, stubManager{}, nower.Fixed(testNow))
	require.ErrorIs(t, offline.HealthCheck(context.Background()), domain.ErrClickUpUnavailable)

	online := New(&fakeGateway{connected: true}, nil, cfg, stubManager{}, nower.Fixed(testNow))
	require.NoError(t, online.HealthCheck(context.Background()))
}

func dashboardGateway() *fakeGateway {
	return &fakeGateway{
		teamMembersFn: func(ctx context.Context, teamID string) ([]domain.User, error) {
			return []domain.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}, nil
		},
		employeeTasksFn: func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
			return []domain.Task{{Status: domain.Status{Type: domain.StatusTypeClosed}}}, nil
		},
		teamWorkloadFn: func(ctx context.Context, teamID string) (domain.Workload, error) {
			w := domain.NewWorkload()
			w.TotalTasks = 20
			w.CompletedTasks = 5
			w.OverdueTasks = 3
			w.ByPriority["urgent"] = 2
			w.ByPriority["none"] = 18
			return w, nil
		},
		spacesFn: func(ctx context.Context, teamID string) ([]domain.Space, error) {
			return []domain.Space{{ID: "s1"}, {ID: "s2", Archived: true}}, nil
		},
		listsFn: func(ctx context.Context, spaceID string) ([]domain.List, error) {
			if spaceID == "s1" {
				return []domain.List{{ID: "l1"}}, nil
			}
			return nil, nil
		},
		tasksFn: func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
			return []domain.Task{{ID: "t-" + listID}}, nil
		},
	}
}

func newTestService(gateway Gateway, store *fakeSnapshotStore) *Service {
	var snapshots SnapshotStore
	if store != nil {
		snapshots = store
	}
	return New(gateway, snapshots, testConfig(), stubManager{}, nower.Fixed(testNow))
}

func testConfig() config.Config {
	return config.Config{
		ClickUp: config.ClickUpConfig{TeamID: "team-1"},
		Timeouts: config.TimeoutConfig{
			Operation:     time.Second,
			LongOperation: 2 * time.Second,
		},
	}
}

type stubManager struct{}

func (stubManager) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (stubManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

var (
	_ trm.Manager   = stubManager{}
	_ Gateway       = (*fakeGateway)(nil)
	_ SnapshotStore = (*fakeSnapshotStore)(nil)
)

type fakeGateway struct {
	teamMembersFn   func(ctx context.Context, teamID string) ([]domain.User, error)
	spacesFn        func(ctx context.Context, teamID string) ([]domain.Space, error)
	listsFn         func(ctx context.Context, spaceID string) ([]domain.List, error)
	tasksFn         func(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error)
	createTaskFn    func(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error)
	updateTaskFn    func(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	employeeTasksFn func(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error)
	teamWorkloadFn  func(ctx context.Context, teamID string) (domain.Workload, error)
	connected       bool
}

func (f *fakeGateway) TeamMembers(ctx context.Context, teamID string) ([]domain.User, error) {
	if f.teamMembersFn == nil {
		panic("unexpected TeamMembers call")
	}
	return f.teamMembersFn(ctx, teamID)
}

func (f *fakeGateway) Spaces(ctx context.Context, teamID string) ([]domain.Space, error) {
	if f.spacesFn == nil {
		panic("unexpected Spaces call")
	}
	return f.spacesFn(ctx, teamID)
}

func (f *fakeGateway) Lists(ctx context.Context, spaceID string) ([]domain.List, error) {
	if f.listsFn == nil {
		panic("unexpected Lists call")
	}
	return f.listsFn(ctx, spaceID)
}

func (f *fakeGateway) Tasks(ctx context.Context, listID string, filter domain.TaskFilter) ([]domain.Task, error) {
	if f.tasksFn == nil {
		panic("unexpected Tasks call")
	}
	return f.tasksFn(ctx, listID, filter)
}

func (f *fakeGateway) CreateTask(ctx context.Context, listID string, input domain.CreateTaskInput) (domain.Task, error) {
	if f.createTaskFn == nil {
		panic("unexpected CreateTask call")
	}
	return f.createTaskFn(ctx, listID, input)
}

func (f *fakeGateway) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if f.updateTaskFn == nil {
		panic("unexpected UpdateTask call")
	}
	return f.updateTaskFn(ctx, taskID, input)
}

func (f *fakeGateway) EmployeeTasks(ctx context.Context, userID string, opts domain.EmployeeTasksOptions) ([]domain.Task, error) {
	if f.employeeTasksFn == nil {
		panic("unexpected EmployeeTasks call")
	}
	return f.employeeTasksFn(ctx, userID, opts)
}

func (f *fakeGateway) TeamWorkload(ctx context.Context, teamID string) (domain.Workload, error) {
	if f.teamWorkloadFn == nil {
		panic("unexpected TeamWorkload call")
	}
	return f.teamWorkloadFn(ctx, teamID)
}

func (f *fakeGateway) TestConnection(ctx context.Context) bool {
	return f.connected
}

type fakeSnapshotStore struct {
	mu           sync.Mutex
	dashboards   []domain.DashboardSnapshot
	performances []domain.PerformanceSnapshot
	history      []domain.PerformanceSnapshot
	lastLimit    int
	pings        int
	saveErr      error
	pingErr      error
}

func (f *fakeSnapshotStore) SaveDashboardSnapshot(ctx context.Context, snapshot domain.DashboardSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.dashboards = append(f.dashboards, snapshot)
	return nil
}

func (f *fakeSnapshotStore) SavePerformanceSnapshot(ctx context.Context, snapshot domain.PerformanceSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.performances = append(f.performances, snapshot)
	return nil
}

func (f *fakeSnapshotStore) ListPerformanceSnapshots(ctx context.Context, userID string, limit int) ([]domain.PerformanceSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	return f.history, nil
}

func (f *fakeSnapshotStore) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}
