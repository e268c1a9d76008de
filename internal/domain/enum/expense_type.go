package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseType classifies an expense as fixed or variable
type ExpenseType int

const (
	ExpenseTypeFixed    ExpenseType = 0
	ExpenseTypeVariable ExpenseType = 1
)

func (t ExpenseType) String() string {
	return [...]string{"fixed", "variable"}[t]
}

func (t ExpenseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ExpenseType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ExpenseType(i)
		return nil
	}
	switch str {
	case "fixed":
		*t = ExpenseTypeFixed
	case "variable":
		*t = ExpenseTypeVariable
	}
	return nil
}

func (t ExpenseType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ExpenseType) Scan(value interface{}) error {
	if value == nil {
		*t = ExpenseTypeFixed
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ExpenseType(v)
	case int:
		*t = ExpenseType(v)
	}
	return nil
}
