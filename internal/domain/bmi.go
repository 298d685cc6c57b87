package domain

import "math"

// Category is the label assigned to a BMI value.
type Category string

// The closed set of categories, in threshold order.
const (
	CategoryInvalid     Category = "Invalid input"
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

const (
	underweightBelow = 18.5
	normalBelow      = 25.0
	overweightBelow  = 30.0
)

// Result is the outcome of a single calculation.
type Result struct {
	BMI      float64
	Category Category
}

// ComputeBMI returns weightKg / heightM². A non-positive height yields 0.
func ComputeBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return weightKg / (heightM * heightM)
}

// Classify maps a BMI value to its category. The first matching threshold
// wins; NaN is reported as invalid.
func Classify(bmi float64) Category {
	switch {
	case bmi <= 0 || math.IsNaN(bmi):
		return CategoryInvalid
	case bmi < underweightBelow:
		return CategoryUnderweight
	case bmi < normalBelow:
		return CategoryNormal
	case bmi < overweightBelow:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Evaluate computes and classifies the BMI for m.
func Evaluate(m Measurement) Result {
	bmi := ComputeBMI(m.WeightKg, m.HeightM)
	return Result{BMI: bmi, Category: Classify(bmi)}
}
