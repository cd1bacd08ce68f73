package minio

import (
	"bytes"
	"context"

	"github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/internal/domain"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// PhotoRepo реализует репозиторий фотографий товаров поверх MinIO.
type PhotoRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewPhotoRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *PhotoRepo {
	return &PhotoRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает фотографию в MinIO и возвращает ключ объекта.
func (p *PhotoRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	reader := bytes.NewReader(image.Bytes)

	info, err := p.mc.PutObject(ctx, p.cfg.BucketName, image.ObjectKey, reader, image.Size, minio.PutObjectOptions{
		ContentType: image.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (p *PhotoRepo) Delete(ctx context.Context, key string) error {
	if err := p.mc.RemoveObject(ctx, p.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
