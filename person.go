package funcdemo

import (
	"fmt"
	"strings"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc is a functional binding for Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in the local time zone.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t. Useful to pin ages in tests and demos.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Date returns the calendar date y-m-d as a midnight UTC time.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Person is an immutable name, surname and date of birth.
// The zero value is a nameless person born on January 1st of year 1.
type Person struct {
	name        string
	surname     string
	dateOfBirth time.Time
}

// NewPerson creates a person. No validation is performed.
// Only the calendar date of dateOfBirth is kept.
func NewPerson(name, surname string, dateOfBirth time.Time) Person {
	y, m, d := dateOfBirth.Date()
	return Person{
		name:        name,
		surname:     surname,
		dateOfBirth: Date(y, m, d),
	}
}

// Name returns the given name.
func (p Person) Name() string {
	return p.name
}

// Surname returns the family name.
func (p Person) Surname() string {
	return p.surname
}

// DateOfBirth returns the date of birth as a midnight UTC time.
func (p Person) DateOfBirth() time.Time {
	return p.dateOfBirth
}

// Age returns the number of full years lived as of today's local date.
// It is recomputed on every call, so it changes on birthdays.
func (p Person) Age() int {
	return p.AgeAt(SystemClock.Now())
}

// AgeAt returns the number of full years between the date of birth and the
// calendar date of now, read in now's own location.
func (p Person) AgeAt(now time.Time) int {
	by, bm, bd := p.dateOfBirth.Date()
	ny, nm, nd := now.Date()
	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	return age
}

// String renders the person as "NAME surname(Age n)".
func (p Person) String() string {
	return p.Format(SystemClock)
}

// Format renders the person like String, with the age taken from clock.
func (p Person) Format(clock Clock) string {
	return fmt.Sprintf("%s %s(Age %d)", strings.ToUpper(p.name), p.surname, p.AgeAt(clock.Now()))
}

// PersonOrder orders persons by age, then name, then surname, all ascending.
// Ages are read from clock on each comparison.
func PersonOrder(clock Clock) ComparatorFunc[Person] {
	byAge := Comparing(func(p Person) int { return p.AgeAt(clock.Now()) })
	return byAge.
		ThenComparing(Comparing(Person.Name)).
		ThenComparing(Comparing(Person.Surname))
}

// ComparePersons is PersonOrder on the system clock.
func ComparePersons(a, b Person) int {
	return PersonOrder(SystemClock)(a, b)
}
