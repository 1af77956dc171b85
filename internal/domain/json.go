package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Millis время в формате ClickUp: миллисекунды Unix epoch, передаваемые строкой или числом.
// Нулевое значение означает отсутствие даты и сериализуется как null.
type Millis struct {
	time.Time
}

// MillisOf создаёт Millis из time.Time.
func MillisOf(t time.Time) Millis {
	return Millis{Time: t}
}

// UnixMillis возвращает значение в миллисекундах или 0 для пустой даты.
func (m Millis) UnixMillis() int64 {
	if m.IsZero() {
		return 0
	}
	return m.Time.UnixMilli()
}

func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(strconv.FormatInt(m.Time.UnixMilli(), 10))), nil
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		m.Time = time.Time{}
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("millis: %w", err)
		}
		raw = s
	}
	if raw == "" {
		m.Time = time.Time{}
		return nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("millis: parse %q: %w", raw, err)
	}
	m.Time = time.UnixMilli(ms).UTC()
	return nil
}

// CustomRole пользовательская роль участника. ClickUp отдаёт её строкой или объектом с полем name.
type CustomRole string

func (r *CustomRole) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = CustomRole(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("custom_role: %w", err)
	}
	*r = CustomRole(obj.Name)
	return nil
}
