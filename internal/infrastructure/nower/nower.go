package nower

import "time"

type nowerImpl struct{}

// New создаёт реализацию на базе системных часов в UTC.
func New() Nower {
	return &nowerImpl{}
}

// Now возвращает текущее системное время в UTC.
func (n *nowerImpl) Now() time.Time {
	return time.Now().UTC()
}

type fixed struct {
	at time.Time
}

// Fixed возвращает Nower, который всегда отдаёт at.
func Fixed(at time.Time) Nower {
	return fixed{at: at}
}

func (f fixed) Now() time.Time {
	return f.at
}
