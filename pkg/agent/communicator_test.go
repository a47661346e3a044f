package agent

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/test/util"
)

func seedUserMessage(t *testing.T, client *ent.Client, teamID, sender, content string, createdAt time.Time) *ent.UserMessage {
	t.Helper()
	um, err := client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(teamID).
		SetSenderName(sender).
		SetContent(content).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return um
}

func TestCommunicatorRun_AnswersOldestVisitorMessage(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	now := time.Now()
	first := seedUserMessage(t, client, st.ID, "Alice", "can you add dark mode?", now.Add(-2*time.Minute))
	second := seedUserMessage(t, client, st.ID, "Bob", "what does it do?", now.Add(-1*time.Minute))

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "answering Alice",
		"results": {"message": "Dark mode is on the roadmap!", "recipient": "", "type": "direct"}
	}`})

	comm := &Communicator{deps: d}
	require.NoError(t, comm.Run(ctx, st.ID))

	// Exactly one visitor message is processed per cycle, oldest first.
	processed, err := client.UserMessage.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, processed.Processed)
	require.NotNil(t, processed.ResponseID)

	reply, err := client.Message.Get(ctx, *processed.ResponseID)
	require.NoError(t, err)
	assert.Equal(t, message.MessageTypeDirect, reply.MessageType)
	assert.Equal(t, "Dark mode is on the roadmap!", reply.Content)
	require.NotNil(t, reply.FromStackID)
	assert.Equal(t, st.ID, *reply.FromStackID)

	untouched, err := client.UserMessage.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, untouched.Processed)
	assert.Nil(t, untouched.ResponseID)

	assert.Equal(t, 1, mock.CallCount())
}

func TestCommunicatorRun_RepliesToPeerMessages(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	peer := util.SeedStack(t, client, "beta", stack.ExecutionStateRunning)

	inbound, err := client.Message.Create().
		SetID(uuid.NewString()).
		SetFromStackID(peer.ID).
		SetToStackID(st.ID).
		SetMessageType(message.MessageTypeDirect).
		SetContent("want to trade demo tips?").
		Save(ctx)
	require.NoError(t, err)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "answering beta",
		"results": {"message": "sure, ping us after the next build", "recipient": "", "type": "direct"}
	}`})

	comm := &Communicator{deps: d}
	require.NoError(t, comm.Run(ctx, st.ID))

	// Empty recipient falls back to the sender.
	reply, err := client.Message.Query().
		Where(message.FromStackIDEQ(st.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, reply.ToStackID)
	assert.Equal(t, peer.ID, *reply.ToStackID)

	read, err := client.Message.Get(ctx, inbound.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{st.ID}, read.ReadBy)

	// A second run finds nothing unread and makes no LLM call.
	require.NoError(t, comm.Run(ctx, st.ID))
	assert.Equal(t, 1, mock.CallCount())
}

func TestCommunicatorRun_BroadcastReply(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	peer := util.SeedStack(t, client, "beta", stack.ExecutionStateRunning)

	_, err := client.Message.Create().
		SetID(uuid.NewString()).
		SetFromStackID(peer.ID).
		SetMessageType(message.MessageTypeBroadcast).
		SetContent("anyone using websockets?").
		Save(ctx)
	require.NoError(t, err)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "broadcasting back",
		"results": {"message": "we are, happy to compare notes", "type": "broadcast"}
	}`})

	comm := &Communicator{deps: d}
	require.NoError(t, comm.Run(ctx, st.ID))

	reply, err := client.Message.Query().
		Where(message.FromStackIDEQ(st.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, message.MessageTypeBroadcast, reply.MessageType)
	assert.Nil(t, reply.ToStackID)
}

func TestCommunicatorMarkRead_Idempotent(t *testing.T) {
	ctx := context.Background()
	client, _, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	peer := util.SeedStack(t, client, "beta", stack.ExecutionStateRunning)

	m, err := client.Message.Create().
		SetID(uuid.NewString()).
		SetFromStackID(peer.ID).
		SetToStackID(st.ID).
		SetMessageType(message.MessageTypeDirect).
		SetContent("hello").
		Save(ctx)
	require.NoError(t, err)

	comm := &Communicator{deps: d}
	require.NoError(t, comm.markRead(ctx, m, st.ID))

	m, err = client.Message.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NoError(t, comm.markRead(ctx, m, st.ID))

	m, err = client.Message.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{st.ID}, m.ReadBy)
}

func TestCommunicatorRun_NothingToDo(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	// A processed visitor message does not count as work.
	um := seedUserMessage(t, client, st.ID, "Alice", "old question", time.Now().Add(-time.Hour))
	require.NoError(t, client.UserMessage.UpdateOneID(um.ID).
		SetProcessed(true).
		Exec(ctx))

	comm := &Communicator{deps: d}
	require.NoError(t, comm.Run(ctx, st.ID))
	assert.Zero(t, mock.CallCount())
}
