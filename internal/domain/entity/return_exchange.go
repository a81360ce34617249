package entity

import "time"

// ReturnExchangeType distinguishes refunds from replacements.
type ReturnExchangeType string

const (
	ReturnExchangeTypeReturn   ReturnExchangeType = "return"
	ReturnExchangeTypeExchange ReturnExchangeType = "exchange"
)

func (t ReturnExchangeType) IsValid() bool {
	return t == ReturnExchangeTypeReturn || t == ReturnExchangeTypeExchange
}

// ReturnExchangeStatus is the state of the after-sale request nested in an order.
type ReturnExchangeStatus string

const (
	ReturnExchangeStatusRequested ReturnExchangeStatus = "requested"
	ReturnExchangeStatusApproved  ReturnExchangeStatus = "approved"
	ReturnExchangeStatusRejected  ReturnExchangeStatus = "rejected"
	ReturnExchangeStatusCompleted ReturnExchangeStatus = "completed"
)

func (s ReturnExchangeStatus) IsValid() bool {
	switch s {
	case ReturnExchangeStatusRequested, ReturnExchangeStatusApproved,
		ReturnExchangeStatusRejected, ReturnExchangeStatusCompleted:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is an admin verdict on a pending request.
func (s ReturnExchangeStatus) IsDecision() bool {
	return s == ReturnExchangeStatusApproved || s == ReturnExchangeStatusRejected
}

// ReturnExchange is the single after-sale request an order may carry.
type ReturnExchange struct {
	Type        ReturnExchangeType
	Status      ReturnExchangeStatus
	Reason      string
	RequestedAt time.Time
	ProcessedAt *time.Time
	CompletedAt *time.Time
	AdminNotes  string
}
