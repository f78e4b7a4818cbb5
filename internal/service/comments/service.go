package comments

import (
	"context"
	"strings"
	"time"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"
)

type commentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	GetAll(ctx context.Context) ([]models.Comment, error)
}

type Service struct {
	repo commentRepository
}

func NewService(r commentRepository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]models.Comment, error) {
	return s.repo.GetAll(ctx)
}

// Add stores a new comment. Text that is empty after trimming is silently
// dropped; that is a no-op, not an error.
func (s *Service) Add(ctx context.Context, author, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	comment := &models.Comment{
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return s.repo.Create(ctx, comment)
}
