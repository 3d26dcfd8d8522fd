package carenet_test

import (
	"github.com/mohae/deepcopy"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/amparo-care/amparo/carenet"
	"github.com/amparo-care/amparo/elders"
	eldersTest "github.com/amparo-care/amparo/elders/test"
	"github.com/amparo-care/amparo/users"
	usersTest "github.com/amparo-care/amparo/users/test"
	"github.com/amparo-care/amparo/visits"
	visitsTest "github.com/amparo-care/amparo/visits/test"
)

var _ = Describe("Reporter", func() {
	var guardianA, guardianB users.User
	var elderA, elderB, elderC elders.Elder

	visitFor := func(guardian users.User, elder elders.Elder) visits.Visit {
		v := visitsTest.RandomVisit()
		v.GuardianID = guardian.ID
		v.ElderID = elder.ID
		return v
	}

	BeforeEach(func() {
		// Fixed ids keep the component traversal order deterministic.
		guardianA = usersTest.RandomUser(users.RoleGuardian)
		guardianA.ID = "g1"
		guardianA.Name = "Ana"
		guardianB = usersTest.RandomUser(users.RoleGuardian)
		guardianB.ID = "g2"
		guardianB.Name = "Breno"

		elderA = eldersTest.RandomElder()
		elderA.ID = "e1"
		elderA.Name = "Alzira"
		elderA.GuardianID = guardianA.ID
		elderB = eldersTest.RandomElder()
		elderB.ID = "e2"
		elderB.Name = "Benedito"
		elderB.GuardianID = guardianB.ID
		elderC = eldersTest.RandomElder()
		elderC.ID = "e3"
		elderC.Name = "Cecília"
		elderC.GuardianID = ""
	})

	names := func(members []carenet.Member) []string {
		result := make([]string, 0, len(members))
		for _, m := range members {
			result = append(result, m.Name)
		}
		return result
	}

	It("groups guardians with the elders they are linked to", func() {
		reporter := carenet.NewReporter(nil, []users.User{guardianA, guardianB}, []elders.Elder{elderA, elderB})

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(2))
		Expect(names(circles[0].Members)).To(ConsistOf("Ana", "Alzira"))
		Expect(names(circles[1].Members)).To(ConsistOf("Breno", "Benedito"))
	})

	It("joins circles connected through a visit", func() {
		// Ana's visit to Benedito, who is Breno's charge, bridges both
		// families into one component.
		reporter := carenet.NewReporter(
			[]visits.Visit{visitFor(guardianA, elderB)},
			[]users.User{guardianA, guardianB},
			[]elders.Elder{elderA, elderB},
		)

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(1))
		Expect(names(circles[0].Members)).To(ConsistOf("Ana", "Breno", "Alzira", "Benedito"))
	})

	It("keeps unlinked elders in their own circle", func() {
		reporter := carenet.NewReporter(nil, []users.User{guardianA}, []elders.Elder{elderA, elderC})

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(2))
	})

	It("sorts circle members by kind then name", func() {
		reporter := carenet.NewReporter(
			[]visits.Visit{visitFor(guardianB, elderA)},
			[]users.User{guardianA, guardianB},
			[]elders.Elder{elderA},
		)

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(1))
		Expect(names(circles[0].Members)).To(Equal([]string{"Alzira", "Ana", "Breno"}))
	})

	It("counts the visits inside each circle", func() {
		reporter := carenet.NewReporter(
			[]visits.Visit{visitFor(guardianA, elderA), visitFor(guardianA, elderA), visitFor(guardianB, elderB)},
			[]users.User{guardianA, guardianB},
			[]elders.Elder{elderA, elderB},
		)

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(2))
		Expect(circles[0].Visits).To(Equal(2))
		Expect(circles[1].Visits).To(Equal(1))
	})

	It("leaves its inputs untouched", func() {
		guardians := []users.User{guardianA, guardianB}
		wards := []elders.Elder{elderA, elderB}
		guardiansBefore := deepcopy.Copy(guardians).([]users.User)
		wardsBefore := deepcopy.Copy(wards).([]elders.Elder)

		reporter := carenet.NewReporter(nil, guardians, wards)
		_, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		reporter.UnvisitedElders()

		Expect(guardians).To(Equal(guardiansBefore))
		Expect(wards).To(Equal(wardsBefore))
	})

	It("ignores visits with dangling references", func() {
		dangling := visitsTest.RandomVisit()

		reporter := carenet.NewReporter(
			[]visits.Visit{dangling},
			[]users.User{guardianA},
			[]elders.Elder{elderA},
		)

		circles, err := reporter.Circles()
		Expect(err).ToNot(HaveOccurred())
		Expect(circles).To(HaveLen(1))
		Expect(circles[0].Visits).To(BeZero())
	})

	Describe("UnvisitedElders", func() {
		It("lists elders without any scheduled visit sorted by name", func() {
			reporter := carenet.NewReporter(
				[]visits.Visit{visitFor(guardianA, elderA)},
				[]users.User{guardianA, guardianB},
				[]elders.Elder{elderA, elderB, elderC},
			)

			Expect(names(reporter.UnvisitedElders())).To(Equal([]string{"Benedito", "Cecília"}))
		})

		It("is empty when every elder has a visit", func() {
			reporter := carenet.NewReporter(
				[]visits.Visit{visitFor(guardianA, elderA)},
				[]users.User{guardianA},
				[]elders.Elder{elderA},
			)

			Expect(reporter.UnvisitedElders()).To(BeEmpty())
		})
	})
})
