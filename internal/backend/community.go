package backend

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Reviews(ctx context.Context) ([]Review, error) {
	var out []Review
	if err := c.getJSON(ctx, "/reviews", nil, &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (c *Client) SubmitReview(ctx context.Context, r PublicReview) error {
	if err := c.sendJSON(ctx, http.MethodPost, "/reviews/public", r, nil); err != nil {
		return fmt.Errorf("submit review: %w", err)
	}
	return nil
}

func (c *Client) SubmitFeedback(ctx context.Context, f Feedback) (*Outreach, error) {
	var out Outreach
	if err := c.sendJSON(ctx, http.MethodPost, "/feedback", f, &out); err != nil {
		return nil, fmt.Errorf("submit feedback: %w", err)
	}
	return &out, nil
}

// EnquireCart forwards the selected cart entries under the "items" key.
func (c *Client) EnquireCart(ctx context.Context, items []EnquiryItem) (*Outreach, error) {
	var out Outreach
	body := struct {
		Items []EnquiryItem `json:"items"`
	}{items}
	if err := c.sendJSON(ctx, http.MethodPost, "/cart/enquire", body, &out); err != nil {
		return nil, fmt.Errorf("cart enquiry: %w", err)
	}
	return &out, nil
}
