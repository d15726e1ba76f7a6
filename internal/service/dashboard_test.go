package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"claritymeet.app/api-server/internal/model"
)

var _ = Describe("DashboardService", func() {
	var (
		ctx context.Context
		f   *fixture
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture(baseTime)
	})

	It("returns empty sections when nothing exists", func() {
		dashboard, err := f.dashboard.Get(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.Upcoming).To(BeZero())
		Expect(dashboard.Counts.PendingReview).To(BeZero())
		Expect(dashboard.Counts.OpenActions).To(BeZero())
		Expect(dashboard.Counts.OverdueActions).To(BeZero())
	})

	It("lists upcoming meetings soonest first", func() {
		f.mustCreateMeeting(ctx, "Later", baseTime.Add(48*time.Hour))
		f.mustCreateMeeting(ctx, "Sooner", baseTime.Add(2*time.Hour))

		dashboard, err := f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.Upcoming).To(Equal(2))
		Expect(dashboard.UpcomingMeetings[0].Title).To(Equal("Sooner"))
		Expect(dashboard.UpcomingMeetings[1].Title).To(Equal("Later"))
	})

	It("excludes scheduled meetings whose time has passed", func() {
		meeting := f.mustCreateMeeting(ctx, "Soon", baseTime.Add(time.Hour))

		dashboard, err := f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.Upcoming).To(Equal(1))

		f.clock.Advance(2 * time.Hour)

		dashboard, err = f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.Upcoming).To(BeZero())

		// Still scheduled, just no longer upcoming.
		loaded, err := f.meetings.Get(ctx, meeting.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Status).To(Equal(model.MeetingScheduled))
	})

	It("surfaces closed meetings without a review as pending review", func() {
		meeting := f.mustCreateMeeting(ctx, "Planning", baseTime.Add(time.Hour))
		f.mustStart(ctx, meeting.ID)
		f.mustClose(ctx, meeting.ID)

		dashboard, err := f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.PendingReview).To(Equal(1))
		Expect(dashboard.PendingReview[0].ID).To(Equal(meeting.ID))

		_, err = f.reviews.Create(ctx, meeting.ID, "Done", 4, false)
		Expect(err).NotTo(HaveOccurred())

		dashboard, err = f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.PendingReview).To(BeZero())
	})

	It("recomputes overdue items from the clock without any writes", func() {
		meeting := f.mustCreateMeeting(ctx, "Planning", baseTime.Add(time.Hour))
		_, err := f.actions.Create(ctx, meeting.ID, "Ship it", "alice", baseTime.AddDate(0, 0, 1))
		Expect(err).NotTo(HaveOccurred())

		dashboard, err := f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.OpenActions).To(Equal(1))
		Expect(dashboard.Counts.OverdueActions).To(BeZero())

		f.clock.Advance(48 * time.Hour)

		dashboard, err = f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.OpenActions).To(Equal(1))
		Expect(dashboard.Counts.OverdueActions).To(Equal(1))
		Expect(dashboard.OverdueActionItems[0].Description).To(Equal("Ship it"))
	})

	It("drops completed items from the open and overdue sections", func() {
		meeting := f.mustCreateMeeting(ctx, "Planning", baseTime.Add(time.Hour))
		item, err := f.actions.Create(ctx, meeting.ID, "Ship it", "alice", baseTime.AddDate(0, 0, -1))
		Expect(err).NotTo(HaveOccurred())

		dashboard, err := f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.OverdueActions).To(Equal(1))

		_, err = f.actions.Complete(ctx, item.ID)
		Expect(err).NotTo(HaveOccurred())

		dashboard, err = f.dashboard.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.Counts.OpenActions).To(BeZero())
		Expect(dashboard.Counts.OverdueActions).To(BeZero())
	})
})
