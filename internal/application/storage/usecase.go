package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/frontino-api/internal/domain"
)

// FileStorage puerto de almacenamiento de archivos.
type FileStorage interface {
	// Upload guarda el archivo bajo la carpeta indicada y devuelve su URL pública.
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (string, error)
	// GetURL devuelve la URL pública de un archivo existente; ("" , nil) si no existe.
	GetURL(ctx context.Context, path string) (string, error)
	// Delete borra el archivo y devuelve si existía.
	Delete(ctx context.Context, path string) (bool, error)
	// Download devuelve el contenido y el content type del archivo.
	Download(ctx context.Context, path string) ([]byte, string, error)
}

// StorageUseCase casos de uso de archivos: subir, consultar URL, borrar y descargar.
type StorageUseCase struct {
	store FileStorage
}

// NewStorageUseCase construye el caso de uso con el puerto de almacenamiento.
func NewStorageUseCase(store FileStorage) *StorageUseCase {
	return &StorageUseCase{store: store}
}

// UploadFile sube un archivo binario a la carpeta de destino y devuelve la URL pública.
func (uc *StorageUseCase) UploadFile(ctx context.Context, folder, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("archivo vacío")
	}
	return uc.store.Upload(ctx, folder, filename, contentType, data)
}

// GetFileURL devuelve la URL pública de un archivo; falla si no existe.
func (uc *StorageUseCase) GetFileURL(ctx context.Context, path string) (string, error) {
	url, err := uc.store.GetURL(ctx, path)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	return url, nil
}

// DeleteFile borra un archivo y devuelve si existía.
func (uc *StorageUseCase) DeleteFile(ctx context.Context, path string) (bool, error) {
	return uc.store.Delete(ctx, path)
}

// DownloadFile devuelve contenido y content type; falla si no existe.
func (uc *StorageUseCase) DownloadFile(ctx context.Context, path string) ([]byte, string, error) {
	data, contentType, err := uc.store.Download(ctx, path)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	return data, contentType, nil
}
