package identity

import (
	"fmt"
	"time"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

const customerNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	femaleDigits = []int{0, 2, 4, 6, 8}
	maleDigits   = []int{1, 3, 5, 7, 9}
)

// Bounds is the span birthdates are drawn from. The two dates may be given in either order.
type Bounds struct {
	Latest   time.Time
	Earliest time.Time
}

// Generator creates customers with a birthdate-derived customer number
type Generator struct {
	rs     interfaces.RandomSource
	names  interfaces.NameProvider
	bounds Bounds
}

func NewGenerator(rs interfaces.RandomSource, names interfaces.NameProvider, bounds Bounds) *Generator {
	return &Generator{
		rs:     rs,
		names:  names,
		bounds: bounds,
	}
}

// CreateCustomers returns count customers with CustomerID 1..count.
func (g *Generator) CreateCustomers(count int) []models.Customer {
	customers := make([]models.Customer, 0, max(count, 0))

	for i := 0; i < count; i++ {
		female := g.rs.WeightedChoice([]float64{1, 1}) == 0
		firstName, lastName := g.names.Name(female)
		birthdate := g.birthdate()

		customers = append(customers, models.Customer{
			CustomerID:     i + 1,
			CustomerNumber: g.customerNumber(birthdate, female),
			FirstName:      firstName,
			LastName:       lastName,
		})
	}
	return customers
}

func (g *Generator) birthdate() time.Time {
	span := g.bounds.Earliest.Sub(g.bounds.Latest)
	return g.bounds.Latest.Add(time.Duration(float64(span) * g.rs.Float64()))
}

// customerNumber formats ddmmyy-NNGC: two random digits, a gender digit (even for
// female, odd otherwise) and a check character from 0-9A-Z. Collisions are not checked.
func (g *Generator) customerNumber(birthdate time.Time, female bool) string {
	first := g.rs.IntRange(0, 9)
	second := g.rs.IntRange(0, 9)

	digits := maleDigits
	if female {
		digits = femaleDigits
	}
	genderDigit := digits[g.rs.IntRange(0, len(digits)-1)]
	check := customerNumberAlphabet[g.rs.IntRange(0, len(customerNumberAlphabet)-1)]

	return fmt.Sprintf("%s-%d%d%d%c", birthdate.Format("020106"), first, second, genderDigit, check)
}
