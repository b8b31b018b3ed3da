package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frontino-api/internal/application/storage"
	"github.com/jhoicas/frontino-api/internal/domain"
)

// fakeStore implementación en memoria del puerto FileStorage.
type fakeStore struct {
	files map[string][]byte
	types map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string][]byte), types: make(map[string]string)}
}

func (s *fakeStore) Upload(_ context.Context, folder, filename, contentType string, data []byte) (string, error) {
	path := folder + "/" + filename
	s.files[path] = data
	s.types[path] = contentType
	return "/api/v1/storage/files/" + path, nil
}

func (s *fakeStore) GetURL(_ context.Context, path string) (string, error) {
	if _, ok := s.files[path]; !ok {
		return "", nil
	}
	return "/api/v1/storage/files/" + path, nil
}

func (s *fakeStore) Delete(_ context.Context, path string) (bool, error) {
	if _, ok := s.files[path]; !ok {
		return false, nil
	}
	delete(s.files, path)
	return true, nil
}

func (s *fakeStore) Download(_ context.Context, path string) ([]byte, string, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, "", nil
	}
	return data, s.types[path], nil
}

func TestUploadFile_OK(t *testing.T) {
	uc := storage.NewStorageUseCase(newFakeStore())

	url, err := uc.UploadFile(context.Background(), "vouchers", "recibo.jpg", "image/jpeg", []byte{1, 2, 3})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/storage/files/vouchers/recibo.jpg", url)
}

func TestUploadFile_Vacio(t *testing.T) {
	uc := storage.NewStorageUseCase(newFakeStore())

	_, err := uc.UploadFile(context.Background(), "vouchers", "recibo.jpg", "image/jpeg", nil)
	assert.Error(t, err)
}

func TestGetFileURL_NoExistente(t *testing.T) {
	uc := storage.NewStorageUseCase(newFakeStore())

	_, err := uc.GetFileURL(context.Background(), "vouchers/nada.jpg")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestDeleteFile_ReportaExistencia(t *testing.T) {
	store := newFakeStore()
	uc := storage.NewStorageUseCase(store)
	ctx := context.Background()

	_, err := uc.UploadFile(ctx, "vouchers", "recibo.jpg", "image/jpeg", []byte{1})
	require.NoError(t, err)

	existed, err := uc.DeleteFile(ctx, "vouchers/recibo.jpg")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = uc.DeleteFile(ctx, "vouchers/recibo.jpg")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestDownloadFile_OK(t *testing.T) {
	uc := storage.NewStorageUseCase(newFakeStore())
	ctx := context.Background()

	_, err := uc.UploadFile(ctx, "vouchers", "recibo.jpg", "image/jpeg", []byte{1, 2, 3})
	require.NoError(t, err)

	data, contentType, err := uc.DownloadFile(ctx, "vouchers/recibo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDownloadFile_NoExistente(t *testing.T) {
	uc := storage.NewStorageUseCase(newFakeStore())

	_, _, err := uc.DownloadFile(context.Background(), "vouchers/nada.jpg")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}
