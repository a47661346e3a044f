package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/test/util"
)

func TestChatService_SendUserMessage(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	chat := NewChatService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	um, err := chat.SendUserMessage(ctx, st.ID, "Alice", "how does it work?")
	require.NoError(t, err)
	assert.Equal(t, "Alice", um.SenderName)
	assert.False(t, um.Processed)
	assert.Nil(t, um.ResponseID)
}

func TestChatService_SendUserMessage_Validation(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	chat := NewChatService(client)

	_, err := chat.SendUserMessage(ctx, "", "Alice", "hi")
	assert.True(t, IsValidationError(err))
	_, err = chat.SendUserMessage(ctx, uuid.NewString(), "", "hi")
	assert.True(t, IsValidationError(err))
	_, err = chat.SendUserMessage(ctx, uuid.NewString(), "Alice", "")
	assert.True(t, IsValidationError(err))

	// Unknown team maps to not found.
	_, err = chat.SendUserMessage(ctx, uuid.NewString(), "Alice", "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChatService_GetChatHistory_InterleavesReplies(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	chat := NewChatService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	now := time.Now()

	q1, err := client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(st.ID).
		SetSenderName("Alice").
		SetContent("first question").
		SetCreatedAt(now.Add(-3 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	reply, err := client.Message.Create().
		SetID(uuid.NewString()).
		SetFromStackID(st.ID).
		SetToStackID(st.ID).
		SetMessageType(message.MessageTypeDirect).
		SetContent("here is the answer").
		SetCreatedAt(now.Add(-2 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.UserMessage.UpdateOneID(q1.ID).
		SetProcessed(true).
		SetResponseID(reply.ID).
		Exec(ctx))

	_, err = client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(st.ID).
		SetSenderName("Bob").
		SetContent("second question").
		SetCreatedAt(now.Add(-1 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	entries, err := chat.GetChatHistory(ctx, st.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Oldest first, replies interleaved by timestamp.
	assert.Equal(t, "first question", entries[0].Content)
	assert.False(t, entries[0].FromTeam)
	assert.True(t, entries[0].Processed)

	assert.Equal(t, "here is the answer", entries[1].Content)
	assert.True(t, entries[1].FromTeam)

	assert.Equal(t, "second question", entries[2].Content)
	assert.False(t, entries[2].Processed)
}

func TestChatService_GetChatHistory_LimitClamped(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	chat := NewChatService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	now := time.Now()
	for i := 0; i < 5; i++ {
		_, err := client.UserMessage.Create().
			SetID(uuid.NewString()).
			SetTeamID(st.ID).
			SetSenderName("Alice").
			SetContent("question").
			SetCreatedAt(now.Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	entries, err := chat.GetChatHistory(ctx, st.ID, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Oversized limits are clamped rather than rejected.
	entries, err = chat.GetChatHistory(ctx, st.ID, maxChatLimit*10)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}
