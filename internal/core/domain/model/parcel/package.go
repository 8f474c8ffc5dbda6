package parcel

import (
	"errors"
	"fmt"
	"math"

	"packexpress/internal/pkg/errs"
	"packexpress/internal/pkg/guard"
)

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created through NewPackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

	// ErrPackageIsIncomplete is returned when a complete record is required but
	// the weight or the dimensions were never set.
	ErrPackageIsIncomplete = errors.New("package weight and dimensions must be set")
)

// Package is the record describing one package of a quote session: its weight
// and its three dimensions. All four measures are non-negative.
//
// A Package is mutable and owned by a single session. It starts with every
// measure at zero; the session fills the weight first, then the dimensions.
// Dimensions are always replaced together so that a failed input pass never
// leaves a half-updated record behind.
//
// Example:
//
//	pkg := parcel.NewPackage()
//	if err := pkg.SetWeight(10); err != nil {
//	    return err
//	}
//	if err := pkg.SetDimensions(2, 3, 4); err != nil {
//	    return err
//	}
//	fmt.Println(pkg.TotalDimensions()) // 9
type Package struct {
	weight float64
	width  float64
	height float64
	length float64

	hasWeight     bool
	hasDimensions bool

	guard guard.ConstructorGuard
}

// NewPackage creates an empty package record.
func NewPackage() *Package {
	return &Package{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the Package was created through NewPackage.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// Weight returns the package weight.
func (p *Package) Weight() float64 {
	return p.weight
}

// Width returns the package width.
func (p *Package) Width() float64 {
	return p.width
}

// Height returns the package height.
func (p *Package) Height() float64 {
	return p.height
}

// Length returns the package length.
func (p *Package) Length() float64 {
	return p.length
}

// TotalDimensions returns width + height + length. It is a plain sum, not a volume.
func (p *Package) TotalDimensions() float64 {
	return p.width + p.height + p.length
}

// IsComplete reports whether both the weight and the dimensions have been recorded.
func (p *Package) IsComplete() bool {
	return p.hasWeight && p.hasDimensions
}

// SetWeight records the package weight.
//
// Returns:
//   - nil on success
//   - *errs.ValueIsOutOfRangeError if weight is negative or not finite; the record is unchanged
func (p *Package) SetWeight(weight float64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := checkMeasure("weight", weight); err != nil {
		return err
	}

	p.weight = weight
	p.hasWeight = true
	return nil
}

// SetDimensions records width, height and length in one step. Either all three
// are stored or, on error, none of them is.
func (p *Package) SetDimensions(width, height, length float64) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := errors.Join(
		checkMeasure("width", width),
		checkMeasure("height", height),
		checkMeasure("length", length),
	); err != nil {
		return err
	}

	p.width = width
	p.height = height
	p.length = length
	p.hasDimensions = true
	return nil
}

// String returns a compact representation for logs.
func (p *Package) String() string {
	return fmt.Sprintf("Package(weight=%g, width=%g, height=%g, length=%g)",
		p.weight, p.width, p.height, p.length)
}

func checkMeasure(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, math.MaxFloat64)
	}
	return nil
}
