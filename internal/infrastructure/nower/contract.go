package nower

import "time"

// Nower отдаёт текущее время. Сервис считает по нему просрочку задач и окна отчётов.
type Nower interface {
	Now() time.Time
}
