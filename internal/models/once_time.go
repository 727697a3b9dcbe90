package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OnceTime is a nullable timestamp that can be filled at most once.
// There is no way to clear or overwrite it after it has been set.
type OnceTime struct {
	at *time.Time
}

func OnceAt(t time.Time) OnceTime {
	return OnceTime{at: &t}
}

func (o OnceTime) IsSet() bool {
	return o.at != nil
}

func (o OnceTime) Time() (time.Time, bool) {
	if o.at == nil {
		return time.Time{}, false
	}
	return *o.at, true
}

// Fill sets the timestamp if it is still empty and reports whether it did.
func (o *OnceTime) Fill(t time.Time) bool {
	if o.at != nil {
		return false
	}
	o.at = &t
	return true
}

func (o OnceTime) Value() (driver.Value, error) {
	if o.at == nil {
		return nil, nil
	}
	return *o.at, nil
}

func (o *OnceTime) Scan(value any) error {
	o.at = nil
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		o.at = &v
		return nil
	case string:
		return o.scanString(v)
	case []byte:
		return o.scanString(string(v))
	default:
		return fmt.Errorf("once time: unsupported scan type %T", value)
	}
}

var onceTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (o *OnceTime) scanString(s string) error {
	for _, layout := range onceTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			o.at = &t
			return nil
		}
	}
	return fmt.Errorf("once time: cannot parse %q", s)
}

func (OnceTime) GormDataType() string {
	return "time"
}

func (o OnceTime) MarshalJSON() ([]byte, error) {
	if o.at == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.at)
}

func (o *OnceTime) UnmarshalJSON(data []byte) error {
	o.at = nil
	if string(data) == "null" {
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.at = &t
	return nil
}
