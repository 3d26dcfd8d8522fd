package integration_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amparo-care/amparo/elders"
	eldersTest "github.com/amparo-care/amparo/elders/test"
	"github.com/amparo-care/amparo/users"
	usersTest "github.com/amparo-care/amparo/users/test"
	"github.com/amparo-care/amparo/visits"
)

func seedVisit(id string, date interface{}, guardian users.User, caregiver users.User, elder elders.Elder) map[string]interface{} {
	visit := map[string]interface{}{
		"id":            id,
		"dataVisita":    date,
		"localVisita":   "Centro Dia",
		"responsavelId": guardian.ID,
		"cuidadorId":    caregiver.ID,
		"idosoId":       elder.ID,
	}
	backend.SeedVisit(visit)
	return visit
}

var _ = Describe("Visit aggregation", func() {
	var guardian, caregiver users.User
	var elder elders.Elder

	BeforeEach(func() {
		guardian = usersTest.RandomUser(users.RoleGuardian)
		caregiver = usersTest.RandomUser(users.RoleCaregiver)
		backend.SeedAccount(guardian, "s3nh4")
		backend.SeedAccount(caregiver, "s3nh4")

		elder = eldersTest.RandomElder()
		elder.GuardianID = guardian.ID
		elder.CaregiverID = caregiver.ID
		backend.SeedElder(elder)
	})

	Describe("as a guardian", func() {
		It("lists own visits with elder names resolved and both date shapes normalized", func() {
			seedVisit("later-"+guardian.ID, "2025-03-01T10:00:00Z", guardian, caregiver, elder)
			seedVisit("sooner-"+guardian.ID, map[string]interface{}{"_seconds": 1700000000}, guardian, caregiver, elder)
			seedVisit("undated-"+guardian.ID, nil, guardian, caregiver, elder)

			result, err := newStack(&guardian).aggregator.ListForActor(context.Background(), guardian)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(3))

			sorted := visits.Sort(result, visits.SortSoonest)
			Expect(sorted[0].ID).To(Equal("sooner-" + guardian.ID))
			Expect(sorted[1].ID).To(Equal("later-" + guardian.ID))
			Expect(sorted[2].ID).To(Equal("undated-" + guardian.ID))

			for _, v := range sorted {
				Expect(v.ElderName).To(Equal(elder.Name))
				Expect(v.GuardianName).To(Equal(visits.UnknownName))
				Expect(v.CaregiverName).To(Equal(visits.UnknownName))
			}
		})

		It("does not see another guardian's visits", func() {
			other := usersTest.RandomUser(users.RoleGuardian)
			backend.SeedAccount(other, "s3nh4")
			seedVisit("foreign-"+other.ID, "2025-03-01T10:00:00Z", other, caregiver, elder)

			result, err := newStack(&guardian).aggregator.ListForActor(context.Background(), guardian)
			Expect(err).ToNot(HaveOccurred())
			for _, v := range result {
				Expect(v.GuardianID).To(Equal(guardian.ID))
			}
		})
	})

	Describe("as a caregiver", func() {
		It("resolves guardian and elder names and flags dangling guardians", func() {
			seedVisit("own-"+caregiver.ID, "2025-03-01T10:00:00Z", guardian, caregiver, elder)
			seedVisit("dangling-"+caregiver.ID, "2025-04-01T10:00:00Z", users.User{ID: "deleted"}, caregiver, elder)

			result, err := newStack(&caregiver).aggregator.ListForActor(context.Background(), caregiver)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))

			sorted := visits.Sort(result, visits.SortSoonest)
			Expect(sorted[0].GuardianName).To(Equal(guardian.Name))
			Expect(sorted[1].GuardianName).To(Equal(visits.UnknownName))
			for _, v := range sorted {
				Expect(v.ElderName).To(Equal(elder.Name))
				Expect(v.CaregiverName).To(Equal(visits.UnknownName))
			}
		})

		It("collapses repeated records from the scoped query", func() {
			repeated := seedVisit("repeat-"+caregiver.ID, "2025-03-01T10:00:00Z", guardian, caregiver, elder)
			backend.SeedVisit(repeated)

			result, err := newStack(&caregiver).aggregator.ListForActor(context.Background(), caregiver)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].ID).To(Equal("repeat-" + caregiver.ID))
		})
	})

	Describe("as an admin", func() {
		It("sees every visit with all three names resolved", func() {
			admin := usersTest.RandomUser(users.RoleAdmin)
			backend.SeedAccount(admin, "s3nh4")
			seedVisit("admin-view-"+admin.ID, "2025-03-01T10:00:00Z", guardian, caregiver, elder)

			result, err := newStack(&admin).aggregator.ListForActor(context.Background(), admin)
			Expect(err).ToNot(HaveOccurred())

			var found *visits.Visit
			for i := range result {
				if result[i].ID == "admin-view-"+admin.ID {
					found = &result[i]
				}
			}
			Expect(found).ToNot(BeNil())
			Expect(found.GuardianName).To(Equal(guardian.Name))
			Expect(found.CaregiverName).To(Equal(caregiver.Name))
			Expect(found.ElderName).To(Equal(elder.Name))
		})
	})

	Describe("scheduling", func() {
		It("creates a visit that shows up in the caregiver's next refresh", func() {
			signedIn := newStack(&caregiver)
			date := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

			created, err := signedIn.scheduler.Schedule(context.Background(), visits.ScheduleParams{
				Date:        date,
				GuardianID:  guardian.ID,
				CaregiverID: caregiver.ID,
				ElderID:     elder.ID,
				Location:    "Casa",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).ToNot(BeEmpty())

			result, err := signedIn.aggregator.ListForActor(context.Background(), caregiver)
			Expect(err).ToNot(HaveOccurred())

			var found *visits.Visit
			for i := range result {
				if result[i].ID == created.ID {
					found = &result[i]
				}
			}
			Expect(found).ToNot(BeNil())
			Expect(found.Location).To(Equal("Casa"))
			millis := found.Date.EpochMillis()
			Expect(millis).To(Equal(date.UnixMilli()))
		})
	})
})
