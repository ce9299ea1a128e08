package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
)

const (
	FrequencyHourly  = "Hourly"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// SalaryRecord adalah satu baris ledger gaji. EmployeeID/EmployeeName
// adalah teks bebas; registry staff dimiliki service lain dan tidak
// divalidasi di sini.
type SalaryRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       string    `gorm:"type:varchar(64);not null;index"`
	EmployeeName     string    `gorm:"type:varchar(120);not null"`
	SalaryAmount     float64   `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentFrequency string    `gorm:"type:varchar(10);not null"`
	PaymentDate      time.Time `gorm:"type:date;not null;index"`
	Bonuses          float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Deductions       float64   `gorm:"type:decimal(12,2);not null;default:0"`

	// NetPay selalu hasil hitung NetPay(), tidak pernah dari client.
	NetPay float64 `gorm:"type:decimal(12,2);not null;default:0"`

	Status    string `gorm:"type:varchar(10);not null;default:'Unpaid';index"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}
