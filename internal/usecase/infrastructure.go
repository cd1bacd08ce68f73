package usecase

import (
	"context"

	"github.com/ects-tech/shop-backend/internal/domain"
)

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}
