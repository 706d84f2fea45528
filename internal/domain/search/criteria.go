package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/kunalm01/ibe-engine/internal/domain/guest"
)

const dateLayout = "2006-01-02"

// Validation failures. Handlers map these to 422 responses.
var (
	ErrMissingParam    = errors.New("missing search parameter")
	ErrInvalidProperty = errors.New("invalid property id")
	ErrInvalidDate     = errors.New("invalid date format, expected yyyy-mm-dd")
	ErrDateOrder       = errors.New("check-in date must be before check-out date")
	ErrDateInPast      = errors.New("check-in date cannot be in the past")
	ErrDateTooFar      = errors.New("stay cannot start more than six months out")
	ErrInvalidGuests   = errors.New("invalid guest or room counts")
)

// Criteria is a validated search: the single source of truth for a room
// query. Every field has passed Validate.
type Criteria struct {
	PropertyID           int
	StartDate            time.Time
	EndDate              time.Time
	Counts               guest.Counts
	Rooms                int
	Beds                 int
	WheelchairAccessible bool
	MilitaryPersonnel    bool
}

// Nights returns the stay length in nights.
func (c Criteria) Nights() int {
	return int(c.EndDate.Sub(c.StartDate).Hours() / 24)
}

// Serialize renders the criteria as shareable URL query parameters. Guest
// types with a zero count are omitted so links stay short.
func (c Criteria) Serialize() url.Values {
	v := url.Values{}
	v.Set("property", strconv.Itoa(c.PropertyID))
	v.Set("startDate", c.StartDate.Format(dateLayout))
	v.Set("endDate", c.EndDate.Format(dateLayout))
	v.Set("room", strconv.Itoa(c.Rooms))
	if c.Beds > 0 {
		v.Set("bed", strconv.Itoa(c.Beds))
	}
	for t, key := range guestParamKeys {
		if n := c.Counts[t]; n > 0 {
			v.Set(key, strconv.Itoa(n))
		}
	}
	if c.WheelchairAccessible {
		v.Set("wheelchair", "true")
	}
	if c.MilitaryPersonnel {
		v.Set("military", "true")
	}
	return v
}

var guestParamKeys = map[guest.Type]string{
	guest.TypeAdults:  "adults",
	guest.TypeTeens:   "teens",
	guest.TypeKids:    "kids",
	guest.TypeSeniors: "seniors",
}

// Params holds the raw, unvalidated query strings as they arrived. Separate
// from Criteria so a bad link can be reported field by field.
type Params struct {
	Property             string
	StartDate            string
	EndDate              string
	Rooms                string
	Beds                 string
	Adults               string
	Teens                string
	Kids                 string
	Seniors              string
	WheelchairAccessible string
	MilitaryPersonnel    string
}

// Parse extracts the raw search parameters from a query. Property and both
// dates are required; everything else defaults when absent.
func Parse(v url.Values) (Params, error) {
	p := Params{
		Property:             v.Get("property"),
		StartDate:            v.Get("startDate"),
		EndDate:              v.Get("endDate"),
		Rooms:                v.Get("room"),
		Beds:                 v.Get("bed"),
		Adults:               v.Get("adults"),
		Teens:                v.Get("teens"),
		Kids:                 v.Get("kids"),
		Seniors:              v.Get("seniors"),
		WheelchairAccessible: v.Get("wheelchair"),
		MilitaryPersonnel:    v.Get("military"),
	}
	for _, required := range []struct{ name, val string }{
		{"property", p.Property},
		{"startDate", p.StartDate},
		{"endDate", p.EndDate},
	} {
		if required.val == "" {
			return p, fmt.Errorf("%w: %s", ErrMissingParam, required.name)
		}
	}
	return p, nil
}

// Validate checks the raw parameters against the booking rules and produces
// a Criteria. now anchors the date window checks.
func (p Params) Validate(now time.Time) (Criteria, error) {
	var c Criteria

	property, err := strconv.Atoi(p.Property)
	if err != nil || property <= 1 {
		return c, ErrInvalidProperty
	}
	c.PropertyID = property

	start, err := time.Parse(dateLayout, p.StartDate)
	if err != nil {
		return c, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, p.EndDate)
	if err != nil {
		return c, ErrInvalidDate
	}
	if !start.Before(end) {
		return c, ErrDateOrder
	}
	// Both ends of the stay must sit inside the booking window.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) || end.Before(today) {
		return c, ErrDateInPast
	}
	horizon := today.AddDate(0, 6, 0)
	if start.After(horizon) || end.After(horizon) {
		return c, ErrDateTooFar
	}
	c.StartDate = start
	c.EndDate = end

	c.Rooms, err = countField(p.Rooms, 1)
	if err != nil || c.Rooms < 1 {
		return c, ErrInvalidGuests
	}
	c.Beds, err = countField(p.Beds, 0)
	if err != nil {
		return c, ErrInvalidGuests
	}

	adults, err := countField(p.Adults, 1)
	if err != nil || adults < 1 {
		return c, ErrInvalidGuests
	}
	teens, err := countField(p.Teens, 0)
	if err != nil {
		return c, ErrInvalidGuests
	}
	kids, err := countField(p.Kids, 0)
	if err != nil {
		return c, ErrInvalidGuests
	}
	seniors, err := countField(p.Seniors, 0)
	if err != nil {
		return c, ErrInvalidGuests
	}
	c.Counts = guest.Counts{
		guest.TypeAdults:  adults,
		guest.TypeTeens:   teens,
		guest.TypeKids:    kids,
		guest.TypeSeniors: seniors,
	}

	c.WheelchairAccessible = p.WheelchairAccessible == "true"
	c.MilitaryPersonnel = p.MilitaryPersonnel == "true"

	return c, nil
}

// countField parses a non-negative integer, using def when the value is
// absent.
func countField(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidGuests
	}
	return n, nil
}
