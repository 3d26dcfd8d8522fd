package integration_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amparo-care/amparo/conditions"
	"github.com/amparo-care/amparo/elders"
	eldersTest "github.com/amparo-care/amparo/elders/test"
	"github.com/amparo-care/amparo/errors"
	"github.com/amparo-care/amparo/medications"
	notificationsTest "github.com/amparo-care/amparo/notifications/test"
	"github.com/amparo-care/amparo/tasks"
	"github.com/amparo-care/amparo/users"
	usersTest "github.com/amparo-care/amparo/users/test"
)

var _ = Describe("Care records", func() {
	var caregiver, guardian users.User
	var signedIn *stack

	BeforeEach(func() {
		caregiver = usersTest.RandomUser(users.RoleCaregiver)
		guardian = usersTest.RandomUser(users.RoleGuardian)
		backend.SeedAccount(caregiver, "s3nh4")
		backend.SeedAccount(guardian, "s3nh4")
		signedIn = newStack(&caregiver)
	})

	Describe("elders", func() {
		It("registers, updates and relinks an elder", func() {
			created, err := signedIn.elders.Create(context.Background(), elders.Elder{
				Name:       "Dona Alzira",
				BirthDate:  "1940-05-20",
				Conditions: []string{"hipertensão"},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).ToNot(BeEmpty())

			created.Name = "Dona Alzira Pereira"
			updated, err := signedIn.elders.Update(context.Background(), *created)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Dona Alzira Pereira"))

			err = signedIn.elders.Link(context.Background(), elders.Link{
				ElderID:     created.ID,
				GuardianID:  guardian.ID,
				CaregiverID: caregiver.ID,
			})
			Expect(err).ToNot(HaveOccurred())

			mine, err := signedIn.elders.ListByCaregiver(context.Background(), caregiver.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].ID).To(Equal(created.ID))

			theirs, err := signedIn.elders.ListByGuardian(context.Background(), guardian.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(theirs).To(HaveLen(1))
		})

		It("updates and clears the photo url", func() {
			elder := eldersTest.RandomElder()
			elder.CaregiverID = caregiver.ID
			backend.SeedElder(elder)

			url := "https://fotos.example.com/" + elder.ID + ".jpg"
			Expect(signedIn.elders.SetPhotoURL(context.Background(), elder.ID, &url)).To(Succeed())

			mine, err := signedIn.elders.ListByCaregiver(context.Background(), caregiver.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(mine[0].PhotoURL).To(Equal(url))

			Expect(signedIn.elders.SetPhotoURL(context.Background(), elder.ID, nil)).To(Succeed())
			mine, err = signedIn.elders.ListByCaregiver(context.Background(), caregiver.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(mine[0].PhotoURL).To(BeEmpty())
		})

		It("reports updates to unknown elders", func() {
			missing := eldersTest.RandomElder()
			_, err := signedIn.elders.Update(context.Background(), missing)
			Expect(err).To(MatchError(errors.NotFound))
		})
	})

	Describe("tasks", func() {
		It("creates, lists and completes a task for an elder", func() {
			elder := eldersTest.RandomElder()
			backend.SeedElder(elder)

			created, err := signedIn.tasks.Create(context.Background(), tasks.Task{
				ElderID:     elder.ID,
				Description: "Caminhada no quarteirão",
				Status:      tasks.StatusPending,
			})
			Expect(err).ToNot(HaveOccurred())

			list, err := signedIn.tasks.ListByElder(context.Background(), elder.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Status).To(Equal(tasks.StatusPending))

			Expect(signedIn.tasks.SetStatus(context.Background(), created.ID, tasks.StatusDone)).To(Succeed())

			list, err = signedIn.tasks.ListByElder(context.Background(), elder.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list[0].Status).To(Equal(tasks.StatusDone))
		})
	})

	Describe("medications", func() {
		It("creates, lists and removes a medication", func() {
			elder := eldersTest.RandomElder()
			backend.SeedElder(elder)

			created, err := signedIn.medications.Create(context.Background(), medications.Medication{
				ElderID:  elder.ID,
				Name:     "Losartana",
				Dosage:   "50mg",
				Schedule: "08:00",
			})
			Expect(err).ToNot(HaveOccurred())

			list, err := signedIn.medications.ListByElder(context.Background(), elder.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Name).To(Equal("Losartana"))

			Expect(signedIn.medications.Delete(context.Background(), created.ID)).To(Succeed())

			list, err = signedIn.medications.ListByElder(context.Background(), elder.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(BeEmpty())
		})

		It("reports deleting a medication twice", func() {
			created, err := signedIn.medications.Create(context.Background(), medications.Medication{Name: "Dipirona"})
			Expect(err).ToNot(HaveOccurred())

			Expect(signedIn.medications.Delete(context.Background(), created.ID)).To(Succeed())
			Expect(signedIn.medications.Delete(context.Background(), created.ID)).To(MatchError(errors.NotFound))
		})
	})

	Describe("health conditions", func() {
		It("adds to and reads the shared catalog", func() {
			created, err := signedIn.conditions.Create(context.Background(), conditions.Condition{
				Name:        "Diabetes tipo 2",
				Description: "Monitorar glicemia diariamente",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).ToNot(BeEmpty())

			list, err := signedIn.conditions.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(ContainElement(*created))
		})
	})

	Describe("notifications", func() {
		It("lists a user's notifications and marks them read", func() {
			seeded := notificationsTest.RandomNotification(guardian.ID)
			backend.SeedNotification(seeded)

			theirs := newStack(&guardian)
			list, err := theirs.notifications.ListByUser(context.Background(), guardian.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(list[0].Read).To(BeFalse())

			Expect(theirs.notifications.SetRead(context.Background(), seeded.ID, true)).To(Succeed())

			list, err = theirs.notifications.ListByUser(context.Background(), guardian.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(list[0].Read).To(BeTrue())
		})
	})
})
