package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// WorkerTransactionType classifies a worker ledger entry. Bonuses add to the
// worker's balance; deductions and salary payments subtract from it.
type WorkerTransactionType int

const (
	WorkerTransactionBonus     WorkerTransactionType = 0
	WorkerTransactionDeduction WorkerTransactionType = 1
	WorkerTransactionSalary    WorkerTransactionType = 2
)

func (t WorkerTransactionType) String() string {
	return [...]string{"bonus", "deduction", "salary"}[t]
}

// Sign returns +1 for entries that increase the worker balance and -1 for
// entries that decrease it
func (t WorkerTransactionType) Sign() int64 {
	if t == WorkerTransactionBonus {
		return 1
	}
	return -1
}

func (t WorkerTransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *WorkerTransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = WorkerTransactionType(i)
		return nil
	}
	switch str {
	case "bonus":
		*t = WorkerTransactionBonus
	case "deduction":
		*t = WorkerTransactionDeduction
	case "salary":
		*t = WorkerTransactionSalary
	}
	return nil
}

func (t WorkerTransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *WorkerTransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = WorkerTransactionBonus
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = WorkerTransactionType(v)
	case int:
		*t = WorkerTransactionType(v)
	}
	return nil
}
