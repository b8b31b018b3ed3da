package mongodb

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/frontino-api/internal/application/storage"
)

var _ storage.FileStorage = (*GridFSStorage)(nil)

// GridFSStorage adaptador de FileStorage sobre un bucket GridFS de la misma
// base de datos. Las URLs públicas las sirve la propia API en
// /api/v1/storage/files/<path>.
type GridFSStorage struct {
	bucket        *gridfs.Bucket
	publicBaseURL string
}

// NewGridFSStorage construye el adaptador. publicBaseURL puede ser vacío
// para devolver URLs relativas.
func NewGridFSStorage(db *mongo.Database, bucketName, publicBaseURL string) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("crear bucket gridfs: %w", err)
	}
	return &GridFSStorage{bucket: bucket, publicBaseURL: strings.TrimSuffix(publicBaseURL, "/")}, nil
}

// gridFile subconjunto del documento de archivos del bucket.
type gridFile struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"filename"`
	Metadata struct {
		ContentType string `bson:"contentType"`
	} `bson:"metadata"`
}

func (s *GridFSStorage) publicURL(path string) string {
	return s.publicBaseURL + "/api/v1/storage/files/" + path
}

// Upload guarda el archivo como <folder>/<unixms>-<filename> y devuelve su URL pública.
func (s *GridFSStorage) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	path := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), filename)

	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	stream, err := s.bucket.OpenUploadStream(path, opts)
	if err != nil {
		return "", fmt.Errorf("abrir stream de subida: %w", err)
	}
	if _, err := stream.Write(data); err != nil {
		_ = stream.Close()
		return "", fmt.Errorf("subir archivo: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("cerrar stream de subida: %w", err)
	}
	return s.publicURL(path), nil
}

func (s *GridFSStorage) findFile(ctx context.Context, path string) (*gridFile, error) {
	cursor, err := s.bucket.Find(bson.M{"filename": path})
	if err != nil {
		return nil, fmt.Errorf("buscar archivo: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, cursor.Err()
	}
	var f gridFile
	if err := cursor.Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar archivo: %w", err)
	}
	return &f, nil
}

// GetURL devuelve la URL pública del archivo; ("", nil) si no existe.
func (s *GridFSStorage) GetURL(ctx context.Context, path string) (string, error) {
	f, err := s.findFile(ctx, path)
	if err != nil {
		return "", err
	}
	if f == nil {
		return "", nil
	}
	return s.publicURL(path), nil
}

// Delete borra el archivo y devuelve si existía.
func (s *GridFSStorage) Delete(ctx context.Context, path string) (bool, error) {
	f, err := s.findFile(ctx, path)
	if err != nil {
		return false, err
	}
	if f == nil {
		return false, nil
	}
	if err := s.bucket.Delete(f.ID); err != nil {
		return false, fmt.Errorf("eliminar archivo: %w", err)
	}
	return true, nil
}

// Download devuelve el contenido y el content type; (nil, "", nil) si no existe.
func (s *GridFSStorage) Download(ctx context.Context, path string) ([]byte, string, error) {
	f, err := s.findFile(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if f == nil {
		return nil, "", nil
	}

	var buf bytes.Buffer
	if _, err := s.bucket.DownloadToStream(f.ID, &buf); err != nil {
		return nil, "", fmt.Errorf("descargar archivo: %w", err)
	}
	contentType := f.Metadata.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return buf.Bytes(), contentType, nil
}
