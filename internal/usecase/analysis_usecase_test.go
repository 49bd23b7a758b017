package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"medassist/internal/domain/entity"
	apperrors "medassist/pkg/errors"
)

type fakeUploadRepo struct {
	uploads map[string]*entity.Upload
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{uploads: make(map[string]*entity.Upload)}
}

func (r *fakeUploadRepo) Create(ctx context.Context, u *entity.Upload) error {
	if u.ID == "" {
		u.ID = "upload-" + u.FileName
	}
	r.uploads[u.ID] = u
	return nil
}

func (r *fakeUploadRepo) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	if u, ok := r.uploads[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound("Upload", nil)
}

func (r *fakeUploadRepo) ListByConsultation(ctx context.Context, consultationID string) ([]*entity.Upload, error) {
	var out []*entity.Upload
	for _, u := range r.uploads {
		if u.ConsultationID == consultationID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUploadRepo) Update(ctx context.Context, u *entity.Upload) error {
	r.uploads[u.ID] = u
	return nil
}

func (r *fakeUploadRepo) Delete(ctx context.Context, id string) error {
	delete(r.uploads, id)
	return nil
}

type fakeFileStore struct {
	data        []byte
	contentType string
	downloadErr error
	deleted     []string
}

func (s *fakeFileStore) UploadFile(ctx context.Context, file io.Reader, fileType, userID string) (string, error) {
	return "https://storage.googleapis.com/test-bucket/uploads/" + userID + "/object", nil
}

func (s *fakeFileStore) DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error) {
	return s.data, s.contentType, s.downloadErr
}

func (s *fakeFileStore) DeleteFile(ctx context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func TestAnalyzeImageReturnsText(t *testing.T) {
	gen := &fakeGenerator{visionResponse: "  No abnormalities visible.  "}
	uc := NewAnalysisUseCase(gen, newFakeUploadRepo(), &fakeFileStore{})

	result, err := uc.AnalyzeImage(context.Background(), AnalyzeImageInput{
		FileName: "xray.png",
		FileType: "image/png",
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
	})

	assert.NoError(t, err)
	assert.Equal(t, "No abnormalities visible.", result)
}

func TestAnalyzeImageEmptyPayload(t *testing.T) {
	uc := NewAnalysisUseCase(&fakeGenerator{}, newFakeUploadRepo(), &fakeFileStore{})

	_, err := uc.AnalyzeImage(context.Background(), AnalyzeImageInput{
		FileName: "xray.png",
		FileType: "image/png",
	})

	assert.True(t, apperrors.Is(err, "ANALYSIS_FAILED"))
}

func TestAnalyzeImageRemoteFailure(t *testing.T) {
	gen := &fakeGenerator{visionErr: errors.New("model overloaded")}
	uc := NewAnalysisUseCase(gen, newFakeUploadRepo(), &fakeFileStore{})

	_, err := uc.AnalyzeImage(context.Background(), AnalyzeImageInput{
		FileName: "xray.png",
		FileType: "image/png",
		Data:     []byte{1, 2, 3},
	})

	assert.True(t, apperrors.Is(err, "ANALYSIS_FAILED"))
}

func TestAnalyzeImageEmptyResponseIsFailure(t *testing.T) {
	gen := &fakeGenerator{visionResponse: "   "}
	uc := NewAnalysisUseCase(gen, newFakeUploadRepo(), &fakeFileStore{})

	_, err := uc.AnalyzeImage(context.Background(), AnalyzeImageInput{
		FileName: "xray.png",
		FileType: "image/png",
		Data:     []byte{1, 2, 3},
	})

	assert.True(t, apperrors.Is(err, "ANALYSIS_FAILED"))
}

func TestAnalyzeUploadStoresResult(t *testing.T) {
	repo := newFakeUploadRepo()
	repo.uploads["up-1"] = &entity.Upload{
		ID:       "up-1",
		UserID:   "user-1",
		FileName: "scan.jpg",
		FileType: "image/jpeg",
		URL:      "https://storage.googleapis.com/test-bucket/uploads/user-1/scan",
	}

	gen := &fakeGenerator{visionResponse: "Mild opacity in the lower lobe."}
	store := &fakeFileStore{data: []byte{1, 2, 3}, contentType: "image/jpeg"}
	uc := NewAnalysisUseCase(gen, repo, store)

	upload, err := uc.AnalyzeUpload(context.Background(), "user-1", "up-1")

	assert.NoError(t, err)
	assert.NotNil(t, upload.AnalysisResult)
	assert.Equal(t, "Mild opacity in the lower lobe.", upload.AnalysisResult.Summary)
	assert.False(t, upload.AnalysisResult.AnalyzedAt.IsZero())
	assert.NotNil(t, repo.uploads["up-1"].AnalysisResult)
}

func TestAnalyzeUploadChecksOwnership(t *testing.T) {
	repo := newFakeUploadRepo()
	repo.uploads["up-1"] = &entity.Upload{ID: "up-1", UserID: "someone-else"}

	uc := NewAnalysisUseCase(&fakeGenerator{}, repo, &fakeFileStore{})

	_, err := uc.AnalyzeUpload(context.Background(), "user-1", "up-1")
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
}

func TestAnalyzeUploadReadFailure(t *testing.T) {
	repo := newFakeUploadRepo()
	repo.uploads["up-1"] = &entity.Upload{
		ID:     "up-1",
		UserID: "user-1",
		URL:    "https://storage.googleapis.com/test-bucket/uploads/user-1/gone",
	}

	store := &fakeFileStore{downloadErr: errors.New("object not found")}
	uc := NewAnalysisUseCase(&fakeGenerator{}, repo, store)

	_, err := uc.AnalyzeUpload(context.Background(), "user-1", "up-1")
	assert.True(t, apperrors.Is(err, "ANALYSIS_FAILED"))
}
