package test

import (
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"

	"github.com/amparo-care/amparo/notifications"
	"github.com/amparo-care/amparo/visits"
)

var (
	Faker = faker.NewWithSeed(rand.NewSource(ginkgo.GinkgoRandomSeed()))
)

func RandomNotification(userId string) notifications.Notification {
	return notifications.Notification{
		ID:        Faker.UUID().V4(),
		UserID:    userId,
		Message:   Faker.Lorem().Sentence(6),
		Read:      false,
		CreatedAt: visits.NewFlexTime(Faker.Time().TimeBetween(time.Now().AddDate(0, -1, 0), time.Now())),
	}
}

func RandomNotifications(count int, userId string) []notifications.Notification {
	list := make([]notifications.Notification, count)
	for i := range list {
		list[i] = RandomNotification(userId)
	}
	return list
}
