package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBookingWithInsurance(t *testing.T) {
	q := ComputeBooking(20, 3, true)

	assert.Equal(t, 60, q.Subtotal)
	assert.Equal(t, 3, q.ServiceFee)
	assert.Equal(t, 6, q.InsuranceFee)
	assert.Equal(t, 69, q.Total)
}

func TestComputeBookingWithoutInsurance(t *testing.T) {
	q := ComputeBooking(20, 3, false)

	assert.Equal(t, 0, q.InsuranceFee)
	assert.Equal(t, 63, q.Total)
}

func TestComputeBookingServiceFeeRounds(t *testing.T) {
	// 15 * 3 = 45, 5% = 2.25 -> 2
	assert.Equal(t, 2, ComputeBooking(15, 3, false).ServiceFee)
	// 25 * 3 = 75, 5% = 3.75 -> 4
	assert.Equal(t, 4, ComputeBooking(25, 3, false).ServiceFee)
	// 10 * 5 = 50, 5% = 2.5 -> rounds half away from zero to 3
	assert.Equal(t, 3, ComputeBooking(10, 5, false).ServiceFee)
}

func TestComputeBookingTotalAlwaysSumsParts(t *testing.T) {
	for _, rate := range []int{12, 20, 35, 50} {
		for hours := 1; hours <= 12; hours++ {
			for _, insured := range []bool{true, false} {
				q := ComputeBooking(rate, hours, insured)
				assert.Equal(t, q.Subtotal+q.InsuranceFee+q.ServiceFee, q.Total,
					"rate=%d hours=%d insured=%v", rate, hours, insured)
			}
		}
	}
}

func TestSettle(t *testing.T) {
	s := Settle(100)

	assert.Equal(t, 100, s.Gross)
	assert.Equal(t, 15, s.Commission)
	assert.Equal(t, 85, s.Net)
}

func TestSettleNetPlusCommissionEqualsGross(t *testing.T) {
	for _, gross := range []int{1, 7, 60, 99, 123, 1000} {
		s := Settle(gross)
		assert.Equal(t, gross, s.Net+s.Commission, "gross=%d", gross)
	}
}

func TestComputeBookingIsDeterministic(t *testing.T) {
	assert.Equal(t, ComputeBooking(18, 4, true), ComputeBooking(18, 4, true))
}
