package visits_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/amparo-care/amparo/visits"
	visitsTest "github.com/amparo-care/amparo/visits/test"
)

var _ = Describe("Scheduler", func() {
	var ctrl *gomock.Controller
	var client *visitsTest.MockClient
	var scheduler *visits.Scheduler
	var params visits.ScheduleParams

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		client = visitsTest.NewMockClient(ctrl)
		scheduler = visits.NewScheduler(client, zap.NewNop().Sugar())

		params = visits.ScheduleParams{
			Date:        time.Date(2025, 6, 15, 14, 30, 0, 0, time.FixedZone("BRT", -3*60*60)),
			GuardianID:  visitsTest.Faker.UUID().V4(),
			CaregiverID: visitsTest.Faker.UUID().V4(),
			ElderID:     visitsTest.Faker.UUID().V4(),
			Location:    visitsTest.Faker.Address().City(),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("submits the visit with an RFC3339 UTC date", func() {
		created := visitsTest.RandomVisit()
		client.EXPECT().
			Create(gomock.Any(), visits.NewVisit{
				Date:        "2025-06-15T17:30:00Z",
				GuardianID:  params.GuardianID,
				CaregiverID: params.CaregiverID,
				ElderID:     params.ElderID,
				Location:    params.Location,
			}).
			Return(&created, nil)

		result, err := scheduler.Schedule(context.Background(), params)
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal(&created))
	})

	DescribeTable("rejects incomplete forms without calling the backend",
		func(mutate func(*visits.ScheduleParams), message string) {
			mutate(&params)
			result, err := scheduler.Schedule(context.Background(), params)
			Expect(err).To(MatchError(ContainSubstring(message)))
			Expect(result).To(BeNil())
		},
		Entry("missing date", func(p *visits.ScheduleParams) { p.Date = time.Time{} }, "date is required"),
		Entry("missing guardian", func(p *visits.ScheduleParams) { p.GuardianID = "" }, "guardian is required"),
		Entry("missing caregiver", func(p *visits.ScheduleParams) { p.CaregiverID = "" }, "caregiver is required"),
		Entry("missing elder", func(p *visits.ScheduleParams) { p.ElderID = "" }, "elder is required"),
		Entry("blank location", func(p *visits.ScheduleParams) { p.Location = "   " }, "location is required"),
	)
})
