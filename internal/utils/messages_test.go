package utils

import (
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	UserID string `json:"user_id"`
	Course string `json:"course"`
	Net    int    `json:"net"`
}

func TestCreateResultMessagePropagatesCorrelationID(t *testing.T) {
	helpers := NewHelpers()

	original := message.NewMessage("original-id", []byte(`{}`))
	middleware.SetCorrelationID("corr-123", original)

	payload := testPayload{
		UserID: gofakeit.UUID(),
		Course: gofakeit.City(),
		Net:    gofakeit.Number(55, 120),
	}

	msg, err := helpers.CreateResultMessage(original, payload, "leaderboard.submit.requested.v1")
	require.NoError(t, err)

	assert.Equal(t, "corr-123", middleware.MessageCorrelationID(msg))
	assert.Equal(t, "leaderboard.submit.requested.v1", msg.Metadata.Get(TopicMetadataKey))
	assert.NotEmpty(t, msg.UUID)
	assert.NotEqual(t, original.UUID, msg.UUID)

	var decoded testPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestCreateNewMessageAssignsFreshCorrelationID(t *testing.T) {
	helpers := NewHelpers()

	msg, err := helpers.CreateNewMessage(testPayload{UserID: gofakeit.UUID()}, "score.round.completed.v1")
	require.NoError(t, err)

	assert.NotEmpty(t, middleware.MessageCorrelationID(msg))
	assert.Equal(t, "score.round.completed.v1", msg.Metadata.Get(TopicMetadataKey))
}

func TestUnmarshalPayloadRejectsMalformedBody(t *testing.T) {
	helpers := NewHelpers()

	msg := message.NewMessage("bad", []byte(`{"net": "not a number"`))

	var out testPayload
	err := helpers.UnmarshalPayload(msg, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}
