// Package seed populates a service with a representative dataset. Every
// record goes through the public service operations.
package seed

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"people/internal/people/models"
	id "people/pkg/domain"
	"people/pkg/requestcontext"
)

// Creator is the subset of the people service the loader needs.
type Creator interface {
	CreatePerson(ctx context.Context, p models.Person) (*models.Person, error)
	CreateAddress(ctx context.Context, a models.Address) (*models.Address, error)
	CreateEmployment(ctx context.Context, e models.Employment) (*models.Employment, error)
	CreateRelationship(ctx context.Context, r models.Relationship) (*models.Relationship, error)
}

// Result counts what a load created.
type Result struct {
	People        int
	Addresses     int
	Employments   int
	Relationships int
}

var preferredCycle = []id.PreferredGenderType{
	id.PreferredGenderMale,
	id.PreferredGenderFemale,
	id.PreferredGenderNonBinary,
}

// Load creates every person (with their addresses and employments) on up to
// workers goroutines, then links neighbouring people with the fixture's
// relationship types. The first failure cancels outstanding work.
func Load(ctx context.Context, svc Creator, fx *Fixture, workers int) (Result, error) {
	if workers < 1 {
		workers = 1
	}
	// one clock for the whole batch
	ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))

	people := make([]*models.Person, len(fx.People))
	var addresses, employments atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range fx.People {
		g.Go(func() error {
			created, err := svc.CreatePerson(gctx, seedPerson(i, name))
			if err != nil {
				return fmt.Errorf("seed person %s %s: %w", name.First, name.Last, err)
			}
			people[i] = created

			for a := range fx.AddressesPerPerson {
				if _, err := svc.CreateAddress(gctx, seedAddress(i, a, created, fx)); err != nil {
					return fmt.Errorf("seed address %d for %s: %w", a+1, name.First, err)
				}
				addresses.Add(1)
			}
			for e := range fx.EmploymentsPerPerson {
				if _, err := svc.CreateEmployment(gctx, seedEmployment(i, e, created)); err != nil {
					return fmt.Errorf("seed employment %d for %s: %w", e+1, name.First, err)
				}
				employments.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{People: len(people), Addresses: int(addresses.Load()), Employments: int(employments.Load())}
	for i, t := range fx.relationshipTypes {
		from, to := people[i%len(people)], people[(i+1)%len(people)]
		if _, err := svc.CreateRelationship(ctx, models.Relationship{
			PersonID: from.ID, RelatedPersonID: to.ID, Type: t,
		}); err != nil {
			return res, fmt.Errorf("seed relationship %s: %w", t, err)
		}
		res.Relationships++
	}
	return res, nil
}

func seedPerson(i int, name Name) models.Person {
	gender := id.GenderFemale
	switch {
	case i%3 == 0:
		gender = id.GenderNonBinary
	case i%2 == 0:
		gender = id.GenderMale
	}
	preferred := models.PreferredGenderOf(preferredCycle[i%len(preferredCycle)])
	if i%7 == 0 {
		preferred = models.PreferredGenderOther(fmt.Sprintf("other-%d", i+1))
	}
	return models.Person{
		FirstName:       name.First,
		LastName:        name.Last,
		DateOfBirth:     id.Date(1970+i%30, time.Month(i%12+1), i%28+1),
		Gender:          gender,
		PreferredGender: preferred,
	}
}

func seedAddress(i, a int, owner *models.Person, fx *Fixture) models.Address {
	types := id.AddressTypes()
	owns := a == 0
	monthly := decimal.Zero
	if !owns {
		monthly = decimal.NewFromInt(int64(1200 + a*250))
	}
	return models.Address{
		PersonID:       owner.ID,
		Street:         fmt.Sprintf("%d Main St Apt %d", 100+i, a+1),
		Town:           fx.Towns[i%len(fx.Towns)],
		State:          fx.States[i%len(fx.States)],
		Type:           types[a%len(types)],
		Description:    fmt.Sprintf("Residence %d for %s", a+1, owner.FirstName),
		Owns:           owns,
		Primary:        a == 0,
		MonthlyPayment: monthly,
		Bedrooms:       1 + a%4,
		Bathrooms:      1 + a%2,
	}
}

func seedEmployment(i, e int, owner *models.Person) models.Employment {
	current := e == 0
	payType, rate, title := id.PayTypeHourly, decimal.NewFromInt(int64(40+i)), "Analyst"
	if e%2 == 0 {
		payType, rate = id.PayTypeSalary, decimal.NewFromInt(int64(75000+i*1000))
	}
	if e == 0 {
		title = "Engineer"
	}
	start := id.Date(2010+i%10, time.Month((e+2)%12+1), i%28+1)
	emp := models.Employment{
		PersonID:        owner.ID,
		Name:            fmt.Sprintf("Company %d for %s", e+1, owner.FirstName),
		Description:     fmt.Sprintf("Example employer %d", e+1),
		Address:         fmt.Sprintf("%d Business Rd", 200+i),
		JobTitle:        title,
		PayType:         payType,
		RateOfPay:       rate,
		CurrentEmployer: current,
		StartDate:       start,
	}
	if !current {
		end := start.AddDate(3, 0, 0)
		emp.EndDate = &end
	}
	return emp
}
