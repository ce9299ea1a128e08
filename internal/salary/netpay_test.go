package salary_test

import (
	"testing"

	"glamist-payroll/internal/salary"

	"github.com/stretchr/testify/assert"
)

func TestNetPay(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		bonuses    float64
		deductions float64
		want       float64
	}{
		{"all components", 1000, 100, 50, 1050},
		{"no extras", 2500, 0, 0, 2500},
		{"deductions exceed pay", 100, 0, 250, -150},
		{"zero salary", 0, 75, 25, 50},
		{"cents survive", 1000.25, 0.50, 0.25, 1000.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, salary.NetPay(tt.amount, tt.bonuses, tt.deductions))
		})
	}
}
