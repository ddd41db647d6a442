package payroll

import (
	"testing"

	"github.com/sejin-enc/laborcost-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecord(gross string) payroll.Record {
	g, _ := decimal.NewFromString(gross)
	return payroll.Record{
		WorkerKey: "id:w-1",
		Name:      "김철수",
		GrossPay:  g,
	}
}

func TestApplyPolicy_StatutoryRateFlooredToWon(t *testing.T) {
	record := ApplyPolicy(baseRecord("1600000"), payroll.StatutoryRate, nil)

	require.NotNil(t, record.Deductions)
	assert.Equal(t, "52800", record.Deductions.IncomeTax.String())
	assert.Equal(t, "1547200", record.NetPay.String())
}

func TestApplyPolicy_TaxFloorsFractionalWon(t *testing.T) {
	// 123456 * 0.033 = 4074.048, floored to 4074.
	record := ApplyPolicy(baseRecord("123456"), payroll.StatutoryRate, nil)

	assert.Equal(t, "4074", record.Deductions.IncomeTax.String())
}

func TestApplyPolicy_NetPayConsistency(t *testing.T) {
	items := map[string]decimal.Decimal{
		"가불":  decimal.NewFromInt(200000),
		"숙소비": decimal.NewFromInt(150000),
	}

	record := ApplyPolicy(baseRecord("1600000"), payroll.StatutoryRate, items)

	total := record.Deductions.Total()
	assert.Equal(t, "402800", total.String())
	assert.True(t, record.NetPay.Equal(record.GrossPay.Sub(total)))
}

func TestApplyPolicy_Idempotent(t *testing.T) {
	items := map[string]decimal.Decimal{"가불": decimal.NewFromInt(50000)}

	first := ApplyPolicy(baseRecord("1600000"), payroll.StatutoryRate, items)
	second := ApplyPolicy(first, payroll.StatutoryRate, items)

	assert.Equal(t, first, second)
}

func TestApplyPolicy_NegativeNetFlaggedNotClamped(t *testing.T) {
	items := map[string]decimal.Decimal{"가불": decimal.NewFromInt(200000)}

	record := ApplyPolicy(baseRecord("100000"), payroll.StatutoryRate, items)

	assert.Equal(t, "-103300", record.NetPay.String())
	assert.Contains(t, record.Warnings, payroll.WarnNegativeNetPay)
}

func TestApplyPolicy_ZeroRate(t *testing.T) {
	record := ApplyPolicy(baseRecord("1600000"), decimal.Zero, nil)

	assert.True(t, record.Deductions.IncomeTax.IsZero())
	assert.True(t, record.NetPay.Equal(record.GrossPay))
}
