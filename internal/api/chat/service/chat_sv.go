package chatService

import (
	"AIShopService/internal/api/chat"
	contextPkg "AIShopService/pkg/context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// intentRule maps a keyword set to an intent. Rules are evaluated in
// order and the first keyword found as a substring of the lower-cased
// message wins; matching is deliberately not word-boundary aware.
type intentRule struct {
	keywords []string
	intent   string
}

var intentRules = []intentRule{
	{keywords: []string{"find", "search", "look", "find"}, intent: chat.IntentSearch},
	{keywords: []string{"recommend", "suggest", "best", "like"}, intent: chat.IntentRecommendation},
	{keywords: []string{"about", "info", "details", "tell", "features"}, intent: chat.IntentProductInfo},
	{keywords: []string{"help", "how", "what", "can you", "guide"}, intent: chat.IntentHelp},
}

const (
	responseSearch         = "I'll help you find the perfect product. What are you looking for?"
	responseRecommendation = "Based on your interests, I have some great recommendations for you."
	responseProductInfo    = "I can help you learn more about our products. Which product interests you?"
	responseHelp           = "I'm here to help! You can search for products, get recommendations, or ask me questions about items."
	responseGeneral        = "That sounds interesting! Would you like me to search for related products or get some recommendations?"
)

// ProcessMessage classifies a message into an intent and returns the
// canned response plus the suggested follow-up action. The
// conversation context is accepted for forward compatibility but not
// interpreted yet.
func (s *chatService) ProcessMessage(ctx context.Context, message string, conversationContext map[string]interface{}) (*chat.MessageResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	intent := detectIntent(strings.ToLower(message))

	result := &chat.MessageResult{Intent: intent}
	switch intent {
	case chat.IntentSearch:
		result.Response = responseSearch
		result.NextAction = action("search")
	case chat.IntentRecommendation:
		result.Response = responseRecommendation
		result.NextAction = action("recommend")
	case chat.IntentProductInfo:
		result.Response = responseProductInfo
		result.NextAction = action("info")
	case chat.IntentHelp:
		result.Response = responseHelp
	default:
		result.Response = responseGeneral
		result.NextAction = action("search")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     intent,
	}).Debug("Classified chat message")

	return result, nil
}

func detectIntent(message string) string {
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(message, keyword) {
				return rule.intent
			}
		}
	}
	return chat.IntentGeneral
}

func action(name string) *string {
	return &name
}
