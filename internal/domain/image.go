package domain

// Image описывает изображение, которое хранится в S3
type Image struct {
	ObjectKey string
	Bytes     []byte
	Size      int64
	MimeType  string
}

func NewImage(objectKey string, data []byte, size int64, mimeType string) *Image {
	return &Image{
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
