package demo

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/funcdemo"
)

// DateLayout is the layout of dates in roster documents and flags.
const DateLayout = "2006-01-02"

//go:embed roster.yaml
var defaultRoster []byte

// ErrInvalidRoster is returned when a roster document cannot be used.
var ErrInvalidRoster = errors.New("demo: invalid roster")

type rosterDoc struct {
	Persons []personDoc `yaml:"persons"`
}

type personDoc struct {
	Name        string `yaml:"name"`
	Surname     string `yaml:"surname"`
	DateOfBirth string `yaml:"dateOfBirth"`
}

// LoadRoster reads a YAML roster:
//
//	persons:
//	  - name: Bart
//	    surname: Simpson
//	    dateOfBirth: "1989-05-01"
//
// Names are not validated; every person needs a date of birth.
func LoadRoster(r io.Reader) ([]funcdemo.Person, error) {
	var doc rosterDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRoster)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}

	persons := make([]funcdemo.Person, 0, len(doc.Persons))
	for i, pd := range doc.Persons {
		if pd.DateOfBirth == "" {
			return nil, fmt.Errorf("%w: person %d (%s %s) has no dateOfBirth", ErrInvalidRoster, i, pd.Name, pd.Surname)
		}
		dob, err := time.Parse(DateLayout, pd.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: person %d: %v", ErrInvalidRoster, i, err)
		}
		persons = append(persons, funcdemo.NewPerson(pd.Name, pd.Surname, dob))
	}
	return persons, nil
}

// LoadRosterFile reads a YAML roster from path.
func LoadRosterFile(path string) ([]funcdemo.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("demo: open roster: %w", err)
	}
	defer f.Close()
	return LoadRoster(f)
}

// DefaultRoster returns the built-in sample persons.
// It panics if the embedded document is broken.
func DefaultRoster() []funcdemo.Person {
	persons, err := LoadRoster(bytes.NewReader(defaultRoster))
	if err != nil {
		panic(fmt.Errorf("demo: embedded roster: %w", err))
	}
	return persons
}
