package suggest_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"claritymeet.app/api-server/internal/model"
	"claritymeet.app/api-server/internal/suggest"
)

type stubSuggester struct {
	agenda  []suggest.AgendaSuggestion
	actions []suggest.ActionSuggestion
	draft   *suggest.ReviewDraft
	err     error
}

func (s *stubSuggester) SuggestAgenda(context.Context, string) ([]suggest.AgendaSuggestion, error) {
	return s.agenda, s.err
}

func (s *stubSuggester) SuggestActions(context.Context, string, []string) ([]suggest.ActionSuggestion, error) {
	return s.actions, s.err
}

func (s *stubSuggester) SummarizeReview(context.Context, string, []model.ActionItem) (*suggest.ReviewDraft, error) {
	return s.draft, s.err
}

var _ = Describe("Fallback", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("serves from the primary when it succeeds", func() {
		primary := &stubSuggester{
			agenda: []suggest.AgendaSuggestion{{Topic: "From the model", TimeAllocation: 5}},
		}

		suggestions, err := suggest.NewFallback(primary).SuggestAgenda(ctx, "Kickoff")

		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(1))
		Expect(suggestions[0].Topic).To(Equal("From the model"))
	})

	It("degrades to the heuristic when the primary fails", func() {
		primary := &stubSuggester{err: errors.New("rate limited")}

		suggestions, err := suggest.NewFallback(primary).SuggestAgenda(ctx, "Kickoff")

		Expect(err).NotTo(HaveOccurred())
		Expect(suggestions).To(HaveLen(3))
		Expect(suggestions[0].Topic).To(Equal("Review progress on Kickoff"))
	})

	It("degrades the review summary as well", func() {
		primary := &stubSuggester{err: errors.New("timeout")}

		draft, err := suggest.NewFallback(primary).SummarizeReview(ctx, "Retro", nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(draft).NotTo(BeNil())
		Expect(draft.SuggestedRating).To(BeNumerically(">=", 2))
	})
})
