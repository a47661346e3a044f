package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// Communicator answers visitor questions and peer mail. Visitor messages
// take priority and are processed exactly one per cycle, oldest first. It
// never sends unsolicited broadcasts.
type Communicator struct {
	deps
}

func (c *Communicator) Type() models.AgentType { return models.AgentCommunicator }

type communicatorReply struct {
	Thinking string `json:"thinking"`
	Results  struct {
		Message   string `json:"message"`
		Recipient string `json:"recipient"`
		Type      string `json:"type"`
	} `json:"results"`
}

func (c *Communicator) Run(ctx context.Context, stackID string) error {
	state, err := c.loadAgentState(ctx, stackID, models.AgentCommunicator)
	if err != nil {
		return err
	}

	visitorMsg, err := c.db.UserMessage.Query().
		Where(usermessage.TeamIDEQ(stackID), usermessage.ProcessedEQ(false)).
		Order(ent.Asc(usermessage.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to load user messages: %w", err)
	}
	if visitorMsg != nil {
		return c.answerVisitor(ctx, stackID, state, visitorMsg)
	}

	unread, err := c.unreadPeerMessages(ctx, stackID)
	if err != nil {
		return err
	}
	if len(unread) == 0 {
		// Became idle mid-flight; nothing to answer.
		return nil
	}
	return c.answerPeers(ctx, stackID, state, unread)
}

func (c *Communicator) answerVisitor(ctx context.Context, stackID string, state *ent.AgentState, um *ent.UserMessage) error {
	system := "You are the communicator of a four-agent hackathon team. " +
		"A visitor asked your team a question. Answer briefly and concretely " +
		"as the team's spokesperson."
	user := fmt.Sprintf("Visitor %s asks: %s\n\nReply with type \"direct\".",
		um.SenderName, truncate(um.Content, 500))

	reply, err := c.chat(ctx, system, user)
	if err != nil {
		return err
	}

	responseID := uuid.NewString()
	_, err = c.db.Message.Create().
		SetID(responseID).
		SetFromStackID(stackID).
		SetToStackID(stackID).
		SetMessageType(message.MessageTypeDirect).
		SetContent(reply.Results.Message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create reply message: %w", err)
	}

	if err := c.db.UserMessage.UpdateOneID(um.ID).
		SetProcessed(true).
		SetResponseID(responseID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark user message processed: %w", err)
	}

	if err := c.saveMemory(ctx, state, state.Memory, reply.Thinking); err != nil {
		return err
	}
	c.trace(ctx, stackID, models.AgentCommunicator, reply.Thinking,
		"reply to visitor "+um.SenderName, truncate(reply.Results.Message, 200))
	return nil
}

func (c *Communicator) answerPeers(ctx context.Context, stackID string, state *ent.AgentState, unread []*ent.Message) error {
	system := "You are the communicator of a four-agent hackathon team. " +
		"Other teams sent you messages. Write one reply. Use type " +
		"\"direct\" with the sender's id as recipient to answer one team, or " +
		"type \"broadcast\" to address everyone."

	var sb strings.Builder
	sb.WriteString("Unread messages:\n")
	for _, m := range unread {
		from := "visitor"
		if m.FromStackID != nil {
			from = *m.FromStackID
		}
		fmt.Fprintf(&sb, "- from %s (%s): %s\n", from, m.MessageType, truncate(m.Content, 300))
	}

	reply, err := c.chat(ctx, system, sb.String())
	if err != nil {
		return err
	}

	create := c.db.Message.Create().
		SetID(uuid.NewString()).
		SetFromStackID(stackID).
		SetContent(reply.Results.Message)
	if reply.Results.Type == "broadcast" {
		create.SetMessageType(message.MessageTypeBroadcast)
	} else {
		create.SetMessageType(message.MessageTypeDirect)
		recipient := reply.Results.Recipient
		if recipient == "" && unread[0].FromStackID != nil {
			recipient = *unread[0].FromStackID
		}
		if recipient != "" {
			create.SetToStackID(recipient)
		}
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create peer reply: %w", err)
	}

	for _, m := range unread {
		if err := c.markRead(ctx, m, stackID); err != nil {
			return err
		}
	}

	if err := c.saveMemory(ctx, state, state.Memory, reply.Thinking); err != nil {
		return err
	}
	c.trace(ctx, stackID, models.AgentCommunicator, reply.Thinking,
		fmt.Sprintf("reply to %d peer messages", len(unread)),
		truncate(reply.Results.Message, 200))
	return nil
}

func (c *Communicator) chat(ctx context.Context, system, user string) (*communicatorReply, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.DefaultTimeout)
	defer cancel()
	content, err := c.chatStructured(callCtx, communicatorSchema, system, user, llm.Options{})
	if err != nil {
		return nil, fmt.Errorf("communicator llm call failed: %w", err)
	}
	var reply communicatorReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &reply, nil
}

// unreadPeerMessages returns messages addressed to this stack or broadcast,
// not sent by this stack, that this stack has not read yet. The readBy set
// lives in a JSON column, so membership is filtered here rather than in SQL.
func (c *Communicator) unreadPeerMessages(ctx context.Context, stackID string) ([]*ent.Message, error) {
	candidates, err := c.db.Message.Query().
		Where(message.Or(
			message.ToStackIDEQ(stackID),
			message.And(message.MessageTypeEQ(message.MessageTypeBroadcast), message.ToStackIDIsNil()),
		)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	var unread []*ent.Message
	for _, m := range candidates {
		if m.FromStackID != nil && *m.FromStackID == stackID {
			continue
		}
		if containsString(m.ReadBy, stackID) {
			continue
		}
		unread = append(unread, m)
	}
	return unread, nil
}

// markRead appends the stack to the message's readBy set. Re-marking an
// already-read message is a no-op, so the write is idempotent.
func (c *Communicator) markRead(ctx context.Context, m *ent.Message, stackID string) error {
	if containsString(m.ReadBy, stackID) {
		return nil
	}
	readBy := append(append([]string{}, m.ReadBy...), stackID)
	if err := c.db.Message.UpdateOneID(m.ID).SetReadBy(readBy).Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
