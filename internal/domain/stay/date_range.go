package stay

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"

	MaxStayNights = 365

	secondsPerDay = 24 * 60 * 60
)

var (
	ErrInvalidDate             = errors.New("date must be formatted as YYYY-MM-DD")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrCheckInInPast           = errors.New("check-in cannot be in the past")
	ErrStayTooLong             = fmt.Errorf("a stay cannot exceed %d nights", MaxStayNights)
)

// DateRange is a half-open span of calendar nights [checkIn, checkOut).
// Both bounds are normalised to midnight UTC.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrCheckOutNotAfterCheckIn
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

func (r DateRange) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}

// Nights counts calendar days through Unix seconds; time.Duration saturates past ~292 years.
func (r DateRange) Nights() int {
	return int((r.checkOut.Unix() - r.checkIn.Unix()) / secondsPerDay)
}

func (r DateRange) ValidateLength() error {
	if r.Nights() > MaxStayNights {
		return ErrStayTooLong
	}
	return nil
}

// ValidateNotPastAt rejects ranges starting before the calendar day of now.
func (r DateRange) ValidateNotPastAt(now time.Time) error {
	if r.checkIn.Before(DateOf(now)) {
		return ErrCheckInInPast
	}
	return nil
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

// Covers reports whether the night starting on day falls inside the range.
func (r DateRange) Covers(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// EachNight returns the start date of every night in the range.
func (r DateRange) EachNight() []time.Time {
	nights := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(DateLayout), r.checkOut.Format(DateLayout))
}
