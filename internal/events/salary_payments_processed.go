package events

import "time"

const SalaryPaymentsProcessedTopic = "salon.salary.payments.v1"

type SalaryPaymentsProcessedEvent struct {
	EventType     string    `json:"event_type"`
	BatchNumber   string    `json:"batch_number"`
	RequestID     string    `json:"request_id,omitempty"`
	SalaryIDs     []string  `json:"salary_ids"`
	ModifiedCount int64     `json:"modified_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
