package services

import (
	"errors"

	"packexpress/internal/core/domain/model/parcel"
	"packexpress/internal/pkg/errs"
)

const (
	// MaxWeight is the heaviest package Package Express ships.
	MaxWeight = 50.0

	// MaxTotalDimensions is the largest width + height + length Package Express ships.
	MaxTotalDimensions = 50.0
)

var (
	// ErrPackageTooHeavy is returned when the weight exceeds MaxWeight.
	ErrPackageTooHeavy = errors.New("package too heavy")

	// ErrPackageTooBig is returned when the total dimensions exceed MaxTotalDimensions.
	ErrPackageTooBig = errors.New("package too big")
)

// PackageValidator checks a package against the shipping limits.
// It is stateless; the limits are compile-time constants.
//
// Business rules:
//   - weight must not exceed MaxWeight
//   - width + height + length must not exceed MaxTotalDimensions
//   - values equal to a limit pass
//
// Example usage:
//
//	validator := services.NewPackageValidator()
//	if err := validator.ValidateWeight(60); errors.Is(err, services.ErrPackageTooHeavy) {
//	    // reject the package
//	}
type PackageValidator struct{}

// NewPackageValidator creates a new PackageValidator instance.
func NewPackageValidator() PackageValidator {
	return PackageValidator{}
}

// ValidateWeight passes iff weight <= MaxWeight.
//
// Returns:
//   - nil if the weight can be shipped
//   - *errs.ValueIsOutOfRangeError caused by ErrPackageTooHeavy otherwise
func (v PackageValidator) ValidateWeight(weight float64) error {
	if weight <= MaxWeight {
		return nil
	}

	return errs.NewValueIsOutOfRangeErrorWithCause("weight", weight, 0, MaxWeight, ErrPackageTooHeavy)
}

// ValidateDimensions passes iff pkg.TotalDimensions() <= MaxTotalDimensions.
//
// Returns:
//   - nil if the package is small enough
//   - *errs.ValueIsOutOfRangeError caused by ErrPackageTooBig otherwise
//   - parcel.ErrPackageIsNotConstructed if pkg is not a constructed record
func (v PackageValidator) ValidateDimensions(pkg *parcel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	total := pkg.TotalDimensions()
	if total <= MaxTotalDimensions {
		return nil
	}

	return errs.NewValueIsOutOfRangeErrorWithCause("total dimensions", total, 0, MaxTotalDimensions, ErrPackageTooBig)
}
