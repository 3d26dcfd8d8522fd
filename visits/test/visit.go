package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/amparo-care/amparo/visits"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomVisit() visits.Visit {
	return visits.Visit{
		ID:          Faker.UUID().V4(),
		Date:        visits.NewFlexTime(Faker.Time().TimeBetween(time.Now(), time.Now().AddDate(0, 3, 0))),
		Location:    Faker.Address().City(),
		GuardianID:  Faker.UUID().V4(),
		CaregiverID: Faker.UUID().V4(),
		ElderID:     Faker.UUID().V4(),
	}
}

func RandomVisits(count int) []visits.Visit {
	list := make([]visits.Visit, count)
	for i := range list {
		list[i] = RandomVisit()
	}
	return list
}
