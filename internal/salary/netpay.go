package salary

// NetPay is the single source of truth for the disbursed amount. Create
// and Update both go through it so the two paths can never diverge.
// Missing bonuses/deductions arrive as the zero value and contribute 0.
func NetPay(salaryAmount, bonuses, deductions float64) float64 {
	return salaryAmount + bonuses - deductions
}
