package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService はお問い合わせフォームに関するビジネスロジックのインターフェース
type ContactService interface {
	Submit(ctx context.Context, msg *model.Message) error
	List(ctx context.Context) ([]*model.Message, error)
}
