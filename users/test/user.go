package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/amparo-care/amparo/users"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomUser(role string) users.User {
	return users.User{
		ID:    Faker.UUID().V4(),
		Name:  Faker.Person().Name(),
		Email: Faker.Internet().Email(),
		Role:  role,
	}
}

func RandomUsers(count int, role string) []users.User {
	list := make([]users.User, count)
	for i := range list {
		list[i] = RandomUser(role)
	}
	return list
}
