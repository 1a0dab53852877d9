// Package pricing holds the platform's money math: pure, deterministic
// functions with no side effects. The 5% booking service fee, the flat
// insurance fee and the 15% job commission are distinct intentional business
// rules and must not be unified.
package pricing

import "math"

// InsuranceFlatFee is the flat per-booking insurance charge when opted in.
const InsuranceFlatFee = 6

// ServiceFeeRate is the booking service fee applied to the subtotal.
const ServiceFeeRate = 0.05

// CommissionRate is withheld from a caregiver's gross job earnings.
const CommissionRate = 0.15

// Quote is a booking cost breakdown. Total = Subtotal + InsuranceFee + ServiceFee.
type Quote struct {
	Subtotal     int `json:"subtotal"`
	ServiceFee   int `json:"serviceFee"`
	InsuranceFee int `json:"insuranceFee"`
	Total        int `json:"total"`
}

// ComputeBooking calculates the cost breakdown for a booking of the given
// duration. The service fee rounds to the nearest currency unit; insurance is
// a flat fee, not a rate.
func ComputeBooking(hourlyRate, hours int, insured bool) Quote {
	subtotal := hourlyRate * hours
	serviceFee := roundNearest(float64(subtotal) * ServiceFeeRate)
	insuranceFee := 0
	if insured {
		insuranceFee = InsuranceFlatFee
	}
	return Quote{
		Subtotal:     subtotal,
		ServiceFee:   serviceFee,
		InsuranceFee: insuranceFee,
		Total:        subtotal + insuranceFee + serviceFee,
	}
}

// Settlement is the payout split for a completed job.
type Settlement struct {
	Gross      int `json:"gross"`
	Commission int `json:"commission"`
	Net        int `json:"net"`
}

// Settle splits gross job earnings into the platform commission and the
// caregiver's net, using the same rounding rule as the service fee.
func Settle(gross int) Settlement {
	commission := roundNearest(float64(gross) * CommissionRate)
	return Settlement{
		Gross:      gross,
		Commission: commission,
		Net:        gross - commission,
	}
}

func roundNearest(v float64) int {
	return int(math.Round(v))
}
