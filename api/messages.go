package api

import (
	"context"
	"fmt"
	"sort"

	"careloop/models"
)

// MessageAPI covers thread resolution and messaging.
type MessageAPI interface {
	// ResolveThread finds or lazily creates the thread for a (user, caregiver)
	// pair and returns its ID.
	ResolveThread(ctx context.Context, userID, caregiverID int) (int, error)
	// ThreadMessages retrieves a thread's history ordered by send time ascending.
	ThreadMessages(ctx context.Context, threadID int) ([]models.Message, error)
	// SendMessage appends one message to a thread.
	SendMessage(ctx context.Context, req models.MessageSend) error
}

func (c *Client) ResolveThread(ctx context.Context, userID, caregiverID int) (int, error) {
	body := map[string]int{"userId": userID, "caregiverId": caregiverID}
	var resp struct {
		ThreadID int `json:"threadId"`
	}
	if err := c.post(ctx, c.Endpoints.MessageThread, body, &resp); err != nil {
		return 0, err
	}
	return resp.ThreadID, nil
}

func (c *Client) ThreadMessages(ctx context.Context, threadID int) ([]models.Message, error) {
	var payloads []messagePayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.MessageThread, threadID), &payloads); err != nil {
		return nil, err
	}
	messages := make([]models.Message, 0, len(payloads))
	for _, p := range payloads {
		messages = append(messages, p.toModel())
	}
	// The server usually returns ascending order already; keep the contract
	// regardless of what it does.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, req models.MessageSend) error {
	return c.post(ctx, c.Endpoints.Messages, req, nil)
}
