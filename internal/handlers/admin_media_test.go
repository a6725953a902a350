package handlers

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harramos25/GlamBook/internal/domain/catalog"
	"github.com/harramos25/GlamBook/internal/media"
	"github.com/harramos25/GlamBook/internal/models"
	uccatalog "github.com/harramos25/GlamBook/internal/usecase/catalog"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Service)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Stylist)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) CreateService(ctx context.Context, s *models.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) CreateStylist(ctx context.Context, u *models.User, s *models.Stylist) error {
	return m.Called(ctx, u, s).Error(0)
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func serviceFormWithImage(t *testing.T, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Gel Manicure", "category": "Nails", "price": "50", "duration": "45"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(image)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func mediaCatalogHandler(repo catalog.Repository, up media.Uploader) *AdminCatalogHandler {
	uc := uccatalog.NewManageCatalog(repo, media.NewStore(up, 0), nil)
	return NewAdminCatalogHandler(uc)
}

func TestAdminCatalogHandler_UndecodableImageIs400(t *testing.T) {
	repo := new(MockCatalogRepository)
	up := new(MockUploader)
	r := adminCatalogRouter(mediaCatalogHandler(repo, up))

	body, ct := serviceFormWithImage(t, []byte("fake png"))
	w := postForm(r, "/api/admin/services", body, ct)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"invalid_image"`)
	up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateService", mock.Anything, mock.Anything)
}

func TestAdminCatalogHandler_ImageUploadedAsWebP(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("CreateService", mock.Anything, mock.MatchedBy(func(s *models.Service) bool {
		return strings.HasPrefix(s.Image, "https://cdn.example.com/services/")
	})).Return(nil)

	up := new(MockUploader)
	up.On("Upload", mock.Anything, mock.AnythingOfType("string"), "image/webp", mock.Anything).
		Return("https://cdn.example.com/services/a.webp", nil)

	r := adminCatalogRouter(mediaCatalogHandler(repo, up))

	body, ct := serviceFormWithImage(t, tinyPNG(t))
	w := postForm(r, "/api/admin/services", body, ct)

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
	up.AssertExpectations(t)
}

func TestAdminCatalogHandler_FailedInsertDeletesUpload(t *testing.T) {
	repo := new(MockCatalogRepository)
	repo.On("CreateService", mock.Anything, mock.Anything).Return(assert.AnError)

	up := new(MockUploader)
	up.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/services/a.webp", nil)
	up.On("Delete", mock.Anything, "services/a.webp").Return(nil)

	r := adminCatalogRouter(mediaCatalogHandler(repo, up))

	body, ct := serviceFormWithImage(t, tinyPNG(t))
	w := postForm(r, "/api/admin/services", body, ct)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	up.AssertExpectations(t)
}

func TestAdminCatalogHandler_ImageWithoutStorageIs503(t *testing.T) {
	repo := new(MockCatalogRepository)
	r := adminCatalogRouter(NewAdminCatalogHandler(uccatalog.NewManageCatalog(repo, nil, nil)))

	body, ct := serviceFormWithImage(t, tinyPNG(t))
	w := postForm(r, "/api/admin/services", body, ct)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"image_upload_disabled"`)
	repo.AssertNotCalled(t, "CreateService", mock.Anything, mock.Anything)
}
