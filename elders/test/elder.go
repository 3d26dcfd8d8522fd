package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/amparo-care/amparo/elders"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomElder() elders.Elder {
	return elders.Elder{
		ID:          Faker.UUID().V4(),
		Name:        Faker.Person().Name(),
		BirthDate:   Faker.Time().TimeBetween(time.Now().AddDate(-95, 0, 0), time.Now().AddDate(-65, 0, 0)).Format("2006-01-02"),
		GuardianID:  Faker.UUID().V4(),
		CaregiverID: Faker.UUID().V4(),
		Conditions:  []string{Faker.Lorem().Word(), Faker.Lorem().Word()},
	}
}

func RandomElders(count int) []elders.Elder {
	list := make([]elders.Elder, count)
	for i := range list {
		list[i] = RandomElder()
	}
	return list
}
