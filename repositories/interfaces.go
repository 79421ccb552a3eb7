package repositories

import (
	"context"

	"github.com/mansakrishna23/simple-message-bank/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	SampleRandom(ctx context.Context, n int) ([]models.Message, error)
	Count(ctx context.Context) (int64, error)
}
