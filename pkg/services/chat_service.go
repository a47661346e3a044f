package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/usermessage"
)

// Chat history limits.
const (
	defaultChatLimit = 50
	maxChatLimit     = 200
)

// ChatEntry is one turn in a team's visitor chat: either a visitor question
// or the communicator's reply.
type ChatEntry struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	FromTeam  bool      `json:"from_team"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatService handles the visitor chat surface: inbound questions and the
// assembled conversation history.
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService.
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// SendUserMessage records a visitor question for a team. The communicator
// picks it up on the team's next cycle.
func (s *ChatService) SendUserMessage(ctx context.Context, teamID, senderName, content string) (*ent.UserMessage, error) {
	if teamID == "" {
		return nil, NewValidationError("team_id", "required")
	}
	if senderName == "" {
		return nil, NewValidationError("sender_name", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	exists, err := s.client.Stack.Query().Where(stack.IDEQ(teamID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check stack: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	um, err := s.client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(teamID).
		SetSenderName(senderName).
		SetContent(content).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create user message: %w", err)
	}
	return um, nil
}

// GetChatHistory returns the team's visitor conversation, oldest first:
// every visitor question interleaved with the replies the communicator
// produced for them.
func (s *ChatService) GetChatHistory(ctx context.Context, teamID string, limit int) ([]ChatEntry, error) {
	if teamID == "" {
		return nil, NewValidationError("team_id", "required")
	}
	if limit <= 0 {
		limit = defaultChatLimit
	}
	if limit > maxChatLimit {
		limit = maxChatLimit
	}

	questions, err := s.client.UserMessage.Query().
		Where(usermessage.TeamIDEQ(teamID)).
		Order(ent.Desc(usermessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user messages: %w", err)
	}

	responseIDs := make([]string, 0, len(questions))
	for _, q := range questions {
		if q.ResponseID != nil {
			responseIDs = append(responseIDs, *q.ResponseID)
		}
	}

	var replies []*ent.Message
	if len(responseIDs) > 0 {
		replies, err = s.client.Message.Query().
			Where(message.IDIn(responseIDs...)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load replies: %w", err)
		}
	}

	entries := make([]ChatEntry, 0, len(questions)+len(replies))
	for _, q := range questions {
		entries = append(entries, ChatEntry{
			Sender:    q.SenderName,
			Content:   q.Content,
			Processed: q.Processed,
			CreatedAt: q.CreatedAt,
		})
	}
	for _, r := range replies {
		entries = append(entries, ChatEntry{
			Sender:    "team",
			Content:   r.Content,
			FromTeam:  true,
			Processed: true,
			CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}
