package funcdemo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson_Accessors(t *testing.T) {
	tests := []struct {
		name    string
		given   string
		surname string
		dob     time.Time
	}{
		{"regular", "Bart", "Simpson", Date(1989, time.May, 1)},
		{"empty strings", "", "", Date(2000, time.January, 1)},
		{"unicode", "Zoë", "Ærøskøbing", Date(1970, time.December, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPerson(tt.given, tt.surname, tt.dob)
			assert.Equal(t, tt.given, p.Name())
			assert.Equal(t, tt.surname, p.Surname())
			assert.Equal(t, tt.dob, p.DateOfBirth())
		})
	}
}

func TestNewPerson_KeepsCalendarDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	p := NewPerson("Bart", "Simpson", time.Date(1989, time.May, 1, 23, 30, 0, 0, loc))

	assert.Equal(t, Date(1989, time.May, 1), p.DateOfBirth())
}

func TestPerson_AgeAt(t *testing.T) {
	p := NewPerson("Bart", "Simpson", Date(1989, time.May, 1))

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", Date(2026, time.April, 30), 36},
		{"on birthday", Date(2026, time.May, 1), 37},
		{"after birthday", Date(2026, time.October, 18), 37},
		{"new year's eve", Date(2026, time.December, 31), 37},
		{"day of birth", Date(1989, time.May, 1), 0},
		{"late in the evening", time.Date(2026, time.April, 30, 23, 59, 59, 0, time.Local), 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.AgeAt(tt.now))
		})
	}
}

func TestPerson_AgeAt_LeapDay(t *testing.T) {
	p := NewPerson("Leap", "Year", Date(2000, time.February, 29))

	assert.Equal(t, 0, p.AgeAt(Date(2001, time.February, 28)))
	assert.Equal(t, 1, p.AgeAt(Date(2001, time.March, 1)))
	assert.Equal(t, 4, p.AgeAt(Date(2004, time.February, 29)))
}

func TestPerson_Age_UsesWallClock(t *testing.T) {
	born := time.Now().AddDate(-30, 0, -1)
	p := NewPerson("Bart", "Simpson", born)

	assert.Equal(t, 30, p.Age())
}

func TestPerson_Format(t *testing.T) {
	p := NewPerson("Bart", "Simpson", Date(1989, time.May, 1))
	clock := FixedClock(Date(2025, time.October, 1))

	assert.Equal(t, "BART Simpson(Age 36)", p.Format(clock))
}

func TestFixedClock(t *testing.T) {
	at := Date(2020, time.March, 3)
	assert.Equal(t, at, FixedClock(at).Now())
}

func TestPersonOrder(t *testing.T) {
	clock := FixedClock(Date(2026, time.June, 1))
	anyone := NewPerson("Anyone", "Else", Date(1996, time.January, 1))  // 30
	bruce := NewPerson("Bruce", "Wayne", Date(2006, time.January, 1))   // 20
	bart := NewPerson("Bart", "Simpson", Date(2006, time.March, 1))     // 20

	persons := []Person{anyone, bruce, bart}
	PersonOrder(clock).Sort(persons)

	assert.Equal(t, []Person{bart, bruce, anyone}, persons)
}

func TestPersonOrder_SurnameBreaksTies(t *testing.T) {
	clock := FixedClock(Date(2026, time.June, 1))
	dob := Date(1958, time.August, 7)
	b := NewPerson("Bruce", "Dickinson", dob)
	a := NewPerson("Bruce", "Banner", dob)

	order := PersonOrder(clock)
	assert.Negative(t, order(a, b))
	assert.Positive(t, order(b, a))
	assert.Zero(t, order(a, a))
}

func TestPersonOrder_IsTotalOrder(t *testing.T) {
	clock := FixedClock(Date(2026, time.October, 18))
	persons := []Person{
		NewPerson("Bart", "Simpson", Date(1989, time.May, 1)),
		NewPerson("Bart", "De Wever", Date(1970, time.December, 21)),
		NewPerson("Eht", "Lived", Date(1966, time.June, 6)),
		NewPerson("Bruce", "Banner", Date(1980, time.April, 20)),
		NewPerson("Bruce", "Dickinson", Date(1958, time.August, 7)),
		NewPerson("Bruce II", "Dickinson", Date(1958, time.August, 7)),
	}
	order := PersonOrder(clock)

	for _, a := range persons {
		for _, b := range persons {
			assert.Equal(t, sign(order(a, b)), -sign(order(b, a)), "antisymmetry %v %v", a, b)
			for _, c := range persons {
				if order(a, b) <= 0 && order(b, c) <= 0 {
					assert.LessOrEqual(t, order(a, c), 0, "transitivity %v %v %v", a, b, c)
				}
			}
		}
	}

	sorted := order.Sorted(persons)
	require.Len(t, sorted, len(persons))
	want := []string{"Simpson", "Banner", "De Wever", "Lived", "Dickinson", "Dickinson"}
	got := make([]string, len(sorted))
	for i, p := range sorted {
		got[i] = p.Surname()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "Bruce", sorted[4].Name())
	assert.Equal(t, "Bruce II", sorted[5].Name())
}

func TestComparePersons(t *testing.T) {
	older := NewPerson("Old", "Timer", Date(1900, time.January, 1))
	younger := NewPerson("Young", "Ster", time.Now().AddDate(-1, 0, 0))

	assert.Negative(t, ComparePersons(younger, older))
	assert.Positive(t, ComparePersons(older, younger))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
