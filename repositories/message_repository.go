package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/mansakrishna23/simple-message-bank/database"
	"github.com/mansakrishna23/simple-message-bank/models"
)

const sampleQuery = `SELECT id, handle, message FROM messages ORDER BY RANDOM() LIMIT ?`

type messageRepository struct {
	db *database.DB

	// SQLite allows one writer at a time; queue writers here rather than
	// leaning on the busy timeout alone.
	writeMu sync.Mutex
}

func NewMessageRepository(db *database.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create stores a new message. It returns models.ErrValidation, without
// writing anything, when the handle or content is empty.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	// A fresh row, even if the caller reuses a struct.
	row := models.Message{Handle: message.Handle, Content: message.Content}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert message: %w", database.StorageError(err))
	}
	message.ID = row.ID
	return nil
}

// SampleRandom returns up to n messages picked uniformly at random without
// replacement. A non-positive n or an empty table yields an empty slice.
func (r *messageRepository) SampleRandom(ctx context.Context, n int) ([]models.Message, error) {
	messages := []models.Message{}
	if n <= 0 {
		return messages, nil
	}

	if err := r.db.WithContext(ctx).Raw(sampleQuery, n).Scan(&messages).Error; err != nil {
		return nil, fmt.Errorf("sample messages: %w", database.StorageError(err))
	}
	return messages, nil
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count messages: %w", database.StorageError(err))
	}
	return count, nil
}
