package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	id "people/pkg/domain"
)

//go:embed fixture.yaml
var defaultFixture []byte

type Name struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
}

// Fixture drives the generated dataset. Record contents are derived from
// each person's position so repeated loads produce the same shape.
type Fixture struct {
	People               []Name   `yaml:"people"`
	Towns                []string `yaml:"towns"`
	States               []string `yaml:"states"`
	AddressesPerPerson   int      `yaml:"addresses_per_person"`
	EmploymentsPerPerson int      `yaml:"employments_per_person"`
	Relationships        []string `yaml:"relationships"`

	relationshipTypes []id.RelationshipType
}

// DefaultFixture returns the embedded dataset.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads a fixture from path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed fixture: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	if err := fx.check(); err != nil {
		return nil, err
	}
	return &fx, nil
}

func (f *Fixture) check() error {
	if len(f.People) == 0 {
		return fmt.Errorf("seed fixture: at least one person is required")
	}
	if len(f.Towns) == 0 || len(f.States) == 0 {
		return fmt.Errorf("seed fixture: towns and states must not be empty")
	}
	if f.AddressesPerPerson < 0 || f.EmploymentsPerPerson < 0 {
		return fmt.Errorf("seed fixture: per-person counts must not be negative")
	}
	if len(f.Relationships) > 0 && len(f.People) < 2 {
		return fmt.Errorf("seed fixture: relationships need at least two people")
	}
	f.relationshipTypes = make([]id.RelationshipType, 0, len(f.Relationships))
	for _, raw := range f.Relationships {
		t, err := id.ParseRelationshipType(raw)
		if err != nil {
			return fmt.Errorf("seed fixture: %w", err)
		}
		f.relationshipTypes = append(f.relationshipTypes, t)
	}
	return nil
}
