package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"claritymeet.app/api-server/internal/http/handler"
	"claritymeet.app/api-server/internal/model"
)

var _ = Describe("ActionItemHandler", func() {
	var (
		router *gin.Engine
		svc    *mockActionItemService
		now    time.Time
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
		router = gin.New()
		svc = &mockActionItemService{}
		h := handler.NewActionItemHandler(svc, clockwork.NewFakeClockAt(now))
		router.POST("/meetings/:id/actions", h.Create)
		router.GET("/meetings/:id/actions", h.ListByMeeting)
		router.PATCH("/actions/:id/complete", h.Complete)
	})

	Describe("Create", func() {
		It("parses a date-only deadline", func() {
			var captured time.Time
			svc.createFn = func(_ context.Context, meetingID int64, description, owner string, deadline time.Time) (*model.ActionItem, error) {
				captured = deadline
				return &model.ActionItem{
					ID:          7,
					MeetingID:   meetingID,
					Description: description,
					Owner:       owner,
					Deadline:    deadline,
					Status:      model.ActionOpen,
				}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"description": "Write proposal",
				"owner":       "alice",
				"deadline":    "2025-06-20",
			})
			req := httptest.NewRequest(http.MethodPost, "/meetings/42/actions", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(captured).To(Equal(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["deadline"]).To(Equal("2025-06-20"))
			Expect(resp["is_overdue"]).To(BeFalse())
		})

		It("returns 400 on an unparseable deadline", func() {
			body, _ := json.Marshal(map[string]string{
				"description": "Write proposal",
				"owner":       "alice",
				"deadline":    "next tuesday",
			})
			req := httptest.NewRequest(http.MethodPost, "/meetings/42/actions", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Complete", func() {
		It("returns 200 with the completed item", func() {
			svc.completeFn = func(_ context.Context, itemID int64) (*model.ActionItem, error) {
				return &model.ActionItem{
					ID:       itemID,
					Deadline: now.AddDate(0, 0, -3),
					Status:   model.ActionCompleted,
				}, nil
			}

			req := httptest.NewRequest(http.MethodPatch, "/actions/7/complete", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["status"]).To(Equal("Completed"))
			// Completed items never render as overdue, past deadline or not.
			Expect(resp["is_overdue"]).To(BeFalse())
		})

		It("returns 409 once the meeting is reviewed", func() {
			svc.completeFn = func(_ context.Context, _ int64) (*model.ActionItem, error) {
				return nil, &model.InvalidTransitionError{Current: model.MeetingReviewed, Attempted: "complete action item"}
			}

			req := httptest.NewRequest(http.MethodPatch, "/actions/7/complete", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("ListByMeeting", func() {
		It("renders overdue against the current clock", func() {
			svc.listByMeetingFn = func(_ context.Context, meetingID int64) ([]model.ActionItem, error) {
				return []model.ActionItem{
					{ID: 1, MeetingID: meetingID, Deadline: now.AddDate(0, 0, -1), Status: model.ActionOpen},
					{ID: 2, MeetingID: meetingID, Deadline: now.AddDate(0, 0, 1), Status: model.ActionOpen},
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/meetings/42/actions", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(2))
			Expect(resp[0]["is_overdue"]).To(BeTrue())
			Expect(resp[1]["is_overdue"]).To(BeFalse())
		})
	})
})
