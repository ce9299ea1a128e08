package salary

type CreateSalaryRequest struct {
	EmployeeID       string  `json:"employeeId" binding:"required"`
	EmployeeName     string  `json:"employeeName" binding:"required"`
	SalaryAmount     float64 `json:"salaryAmount" binding:"required,gte=0"`
	PaymentFrequency string  `json:"paymentFrequency" binding:"required,oneof=Hourly Weekly Monthly"`
	PaymentDate      string  `json:"paymentDate" binding:"required"`
	Bonuses          float64 `json:"bonuses" binding:"gte=0"`
	Deductions       float64 `json:"deductions" binding:"gte=0"`
	Status           string  `json:"status" binding:"omitempty,oneof=Unpaid Paid"`
	Notes            string  `json:"notes"`
}

// UpdateSalaryRequest mengganti SEMUA field yang bisa diubah; netPay
// dihitung ulang dari nilai baru, tidak pernah digabung dengan nilai lama.
type UpdateSalaryRequest struct {
	EmployeeID       string  `json:"employeeId" binding:"required"`
	EmployeeName     string  `json:"employeeName" binding:"required"`
	SalaryAmount     float64 `json:"salaryAmount" binding:"required,gte=0"`
	PaymentFrequency string  `json:"paymentFrequency" binding:"required,oneof=Hourly Weekly Monthly"`
	PaymentDate      string  `json:"paymentDate" binding:"required"`
	Bonuses          float64 `json:"bonuses" binding:"gte=0"`
	Deductions       float64 `json:"deductions" binding:"gte=0"`
	Status           string  `json:"status" binding:"required,oneof=Unpaid Paid"`
	Notes            string  `json:"notes"`
}

type ProcessPaymentsRequest struct {
	IDs []string `json:"ids"`
}

type SalaryResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	SalaryAmount     float64 `json:"salaryAmount"`
	PaymentFrequency string  `json:"paymentFrequency"`
	PaymentDate      string  `json:"paymentDate"`
	Bonuses          float64 `json:"bonuses"`
	Deductions       float64 `json:"deductions"`
	NetPay           float64 `json:"netPay"`
	Status           string  `json:"status"`
	Notes            string  `json:"notes"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type TrendPoint struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type DashboardResponse struct {
	TotalPayroll    float64      `json:"totalPayroll"`
	PendingPayments int64        `json:"pendingPayments"`
	SalaryTrend     []TrendPoint `json:"salaryTrend"`
}
