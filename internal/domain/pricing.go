package domain

import (
	"math"
	"time"
)

// CalculatePrice returns hourlyRate multiplied by the duration in hours, rounded to cents
func CalculatePrice(hourlyRate float64, start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	return RoundPrice(hourlyRate * hours)
}

// RoundPrice rounds an amount to two decimal places
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ToMinorUnits converts an amount to the smallest currency unit (cents)
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
