package names

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
)

// FakeProvider draws names from gofakeit's person corpus.
// gofakeit does not split first names by gender, so the flag does not narrow the pool;
// it only feeds the gender digit of the customer number.
type FakeProvider struct {
	faker *gofakeit.Faker
}

// NewFakeProvider returns a provider seeded with seed. A seed of 0 picks a random seed.
func NewFakeProvider(seed uint64) *FakeProvider {
	return &FakeProvider{faker: gofakeit.New(seed)}
}

func (p *FakeProvider) Name(female bool) (string, string) {
	return p.faker.FirstName(), p.faker.LastName()
}

var _ interfaces.NameProvider = (*FakeProvider)(nil)
