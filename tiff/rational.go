package tiff

import "fmt"

// URational is an unsigned rational value, as used by TIFF type 5.
type URational struct {
	Num, Den uint32
}

func (r URational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float returns the rational as a float64. It returns 0 if the
// denominator is 0, rather than dividing by zero.
func (r URational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// SRational is a signed rational value, as used by TIFF type 10.
type SRational struct {
	Num, Den int32
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float returns the rational as a float64. It returns 0 if the
// denominator is 0, rather than dividing by zero.
func (r SRational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}
