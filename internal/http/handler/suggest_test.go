package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"claritymeet.app/api-server/internal/http/handler"
	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/suggest"
)

var _ = Describe("SuggestHandler", func() {
	var (
		router *gin.Engine
		svc    *mockSuggestService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockSuggestService{}
		h := handler.NewSuggestHandler(svc, 5*time.Second)
		router.POST("/ai/suggest-agenda", h.SuggestAgenda)
		router.POST("/ai/summarize-review", h.SummarizeReview)
	})

	It("returns agenda suggestions", func() {
		svc.suggestAgendaFn = func(_ context.Context, title string) ([]suggest.AgendaSuggestion, error) {
			return []suggest.AgendaSuggestion{
				{Topic: "Review progress on " + title, TimeAllocation: 10},
			}, nil
		}

		body, _ := json.Marshal(map[string]string{"title": "Q3 Kickoff"})
		req := httptest.NewRequest(http.MethodPost, "/ai/suggest-agenda", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string][]map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["suggestions"]).To(HaveLen(1))
		Expect(resp["suggestions"][0]["topic"]).To(Equal("Review progress on Q3 Kickoff"))
	})

	It("runs the suggester under a deadline", func() {
		var hadDeadline bool
		svc.suggestAgendaFn = func(ctx context.Context, _ string) ([]suggest.AgendaSuggestion, error) {
			_, hadDeadline = ctx.Deadline()
			return nil, nil
		}

		body, _ := json.Marshal(map[string]string{"title": "Q3 Kickoff"})
		req := httptest.NewRequest(http.MethodPost, "/ai/suggest-agenda", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(hadDeadline).To(BeTrue())
	})

	It("passes action item state through to the summarizer", func() {
		var captured []model.ActionItem
		svc.summarizeReviewFn = func(_ context.Context, _ string, actionItems []model.ActionItem) (*suggest.ReviewDraft, error) {
			captured = actionItems
			return &suggest.ReviewDraft{Summary: "All wrapped up.", SuggestedRating: 3}, nil
		}

		body, _ := json.Marshal(map[string]any{
			"title": "Retro",
			"action_items": []map[string]string{
				{"description": "Ship it", "status": "Completed"},
				{"description": "Write docs", "status": "Open"},
			},
		})
		req := httptest.NewRequest(http.MethodPost, "/ai/summarize-review", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(captured).To(HaveLen(2))
		Expect(captured[0].Status).To(Equal(model.ActionCompleted))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["suggested_rating"]).To(BeEquivalentTo(3))
	})

	It("returns 400 on a missing title", func() {
		req := httptest.NewRequest(http.MethodPost, "/ai/suggest-agenda", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
