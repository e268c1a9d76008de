package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DebtStatus represents the repayment state of a debt. It is always derived
// from the sum of recorded payments against the debt amount.
type DebtStatus int

const (
	DebtStatusUnpaid        DebtStatus = 0
	DebtStatusPartiallyPaid DebtStatus = 1
	DebtStatusPaid          DebtStatus = 2
)

func (s DebtStatus) String() string {
	return [...]string{"unpaid", "partially_paid", "paid"}[s]
}

func (s DebtStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DebtStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DebtStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = DebtStatusUnpaid
	case "partially_paid":
		*s = DebtStatusPartiallyPaid
	case "paid":
		*s = DebtStatusPaid
	}
	return nil
}

func (s DebtStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DebtStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DebtStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DebtStatus(v)
	case int:
		*s = DebtStatus(v)
	}
	return nil
}
