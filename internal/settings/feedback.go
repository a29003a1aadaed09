package settings

import (
	"time"
)

// FeedbackType identifies one in-app feedback surface.
type FeedbackType string

// Known feedback surfaces.
const (
	FeedbackGeneral            FeedbackType = "general"
	FeedbackProductsVariations FeedbackType = "productsVariations"
	FeedbackOrdersCreation     FeedbackType = "ordersCreation"
)

// FeedbackStatus is the lifecycle state of one feedback surface.
type FeedbackStatus string

const (
	// FeedbackPending means the user has not acted on the feedback card.
	FeedbackPending FeedbackStatus = "pending"
	// FeedbackDismissed means the user dismissed the card without giving
	// feedback.
	FeedbackDismissed FeedbackStatus = "dismissed"
	// FeedbackGiven means feedback was submitted.
	FeedbackGiven FeedbackStatus = "given"
)

// FeedbackSetting is one feedback surface's persisted state.
type FeedbackSetting struct {
	Name FeedbackType `json:"name"`
	// Status is the lifecycle state of the surface.
	Status FeedbackStatus `json:"status"`
	// LastShown is when the card was last presented or acted on.
	LastShown *time.Time `json:"lastShown,omitempty"`
}

// FeedbackVisibilityPolicy decides whether a feedback card should be shown
// given the full settings record. The store treats the policy as a given
// predicate; the product rule lives with the caller that constructs the
// store.
type FeedbackVisibilityPolicy func(s GeneralAppSettings, t FeedbackType) (bool, error)

// feedbackRepromptInterval is how long a given or dismissed feedback stays
// hidden before the card may show again.
const feedbackRepromptInterval = 183 * 24 * time.Hour

// DefaultFeedbackVisibility is the stock policy: a card is visible while
// its status is pending, and again once the reprompt interval has elapsed
// since it was last given or dismissed.
func DefaultFeedbackVisibility(s GeneralAppSettings, t FeedbackType) (bool, error) {
	feedback, ok := s.Feedbacks[t]
	if !ok || feedback.Status == FeedbackPending {
		return true, nil
	}
	if feedback.LastShown == nil {
		return false, nil
	}
	return time.Since(*feedback.LastShown) >= feedbackRepromptInterval, nil
}
