package clickup

import (
	"net/url"
	"strconv"
	"time"

	"hr-dashboard-service/internal/domain"
)

// EncodeTaskFilter переводит фильтр в query-параметры ClickUp.
// Незаданные поля пропускаются, массивы повторяются как name[]=v.
func EncodeTaskFilter(f domain.TaskFilter) url.Values {
	q := url.Values{}
	setBool(q, "archived", f.Archived)
	if f.Page != nil {
		q.Set("page", strconv.Itoa(*f.Page))
	}
	if f.OrderBy != "" {
		q.Set("order_by", f.OrderBy)
	}
	setBool(q, "reverse", f.Reverse)
	setBool(q, "subtasks", f.Subtasks)
	addAll(q, "statuses[]", f.Statuses)
	setBool(q, "include_closed", f.IncludeClosed)
	addAll(q, "assignees[]", f.Assignees)
	addAll(q, "tags[]", f.Tags)
	setTime(q, "due_date_gt", f.DueDateGt)
	setTime(q, "due_date_lt", f.DueDateLt)
	setTime(q, "date_created_gt", f.DateCreatedGt)
	setTime(q, "date_created_lt", f.DateCreatedLt)
	setTime(q, "date_updated_gt", f.DateUpdatedGt)
	setTime(q, "date_updated_lt", f.DateUpdatedLt)
	return q
}

func setBool(q url.Values, name string, v *bool) {
	if v != nil {
		q.Set(name, strconv.FormatBool(*v))
	}
}

func setTime(q url.Values, name string, v *time.Time) {
	if v != nil && !v.IsZero() {
		q.Set(name, strconv.FormatInt(v.UnixMilli(), 10))
	}
}

func addAll(q url.Values, name string, values []string) {
	for _, v := range values {
		if v != "" {
			q.Add(name, v)
		}
	}
}
