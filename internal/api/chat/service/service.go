package chatService

import (
	"AIShopService/internal/api/chat"
	"context"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, message string, conversationContext map[string]interface{}) (*chat.MessageResult, error)
}

type chatService struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) IChatService {
	return &chatService{
		log: log,
	}
}
