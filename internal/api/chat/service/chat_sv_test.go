package chatService

import (
	"AIShopService/internal/api/chat"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() IChatService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger)
}

func TestProcessMessageIntents(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name       string
		message    string
		intent     string
		nextAction string
	}{
		{
			name:       "search keyword wins over help keywords",
			message:    "can you help me find headphones",
			intent:     chat.IntentSearch,
			nextAction: "search",
		},
		{
			name:       "best maps to recommendation before what maps to help",
			message:    "what is the best camera",
			intent:     chat.IntentRecommendation,
			nextAction: "recommend",
		},
		{
			name:       "product info",
			message:    "tell me the details of this product",
			intent:     chat.IntentProductInfo,
			nextAction: "info",
		},
		{
			name:    "help",
			message: "how does this work",
			intent:  chat.IntentHelp,
		},
		{
			name:       "general fallback",
			message:    "hello there",
			intent:     chat.IntentGeneral,
			nextAction: "search",
		},
		{
			name:       "substring match inside a word",
			message:    "I am looking around",
			intent:     chat.IntentSearch,
			nextAction: "search",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.ProcessMessage(context.Background(), tt.message, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.intent, result.Intent)
			assert.NotEmpty(t, result.Response)

			if tt.nextAction == "" {
				assert.Nil(t, result.NextAction)
			} else {
				require.NotNil(t, result.NextAction)
				assert.Equal(t, tt.nextAction, *result.NextAction)
			}
		})
	}
}

func TestProcessMessageCannedResponses(t *testing.T) {
	s := newTestService()

	result, err := s.ProcessMessage(context.Background(), "search for shoes", nil)
	require.NoError(t, err)
	assert.Equal(t, "I'll help you find the perfect product. What are you looking for?", result.Response)

	result, err = s.ProcessMessage(context.Background(), "how do I use this", nil)
	require.NoError(t, err)
	assert.Equal(t, "I'm here to help! You can search for products, get recommendations, or ask me questions about items.", result.Response)
}

func TestProcessMessageIsCaseInsensitive(t *testing.T) {
	s := newTestService()

	result, err := s.ProcessMessage(context.Background(), "RECOMMEND me something", nil)

	require.NoError(t, err)
	assert.Equal(t, chat.IntentRecommendation, result.Intent)
}

func TestProcessMessageIgnoresContext(t *testing.T) {
	s := newTestService()
	conversationContext := map[string]interface{}{"page": "cart"}

	withContext, err := s.ProcessMessage(context.Background(), "find a gift", conversationContext)
	require.NoError(t, err)
	withoutContext, err := s.ProcessMessage(context.Background(), "find a gift", nil)
	require.NoError(t, err)

	assert.Equal(t, withoutContext, withContext)
}
