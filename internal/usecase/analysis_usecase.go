package usecase

import (
	"context"
	"strings"
	"time"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/internal/infrastructure/genai"
	"medassist/pkg/errors"
	"medassist/pkg/logger"
)

const analysisInstruction = `You are a medical imaging assistant. Analyze this medical image. ` +
	`Describe your observations, point out any visible abnormalities, ` +
	`recommend follow-up examinations where appropriate, ` +
	`and add notes a patient can understand. ` +
	`Remind the patient that only a qualified physician can give a diagnosis.`

type AnalysisUseCase struct {
	generator  genai.Generator
	uploadRepo repository.UploadRepository
	fileStore  FileStore
}

func NewAnalysisUseCase(generator genai.Generator, uploadRepo repository.UploadRepository, fileStore FileStore) *AnalysisUseCase {
	return &AnalysisUseCase{
		generator:  generator,
		uploadRepo: uploadRepo,
		fileStore:  fileStore,
	}
}

type AnalyzeImageInput struct {
	FileName string
	FileType string
	Data     []byte
}

// AnalyzeImage submits one in-memory image to the vision-capable service
// and returns the raw response text. The whole payload is buffered for
// the duration of the call; there is no streaming.
func (uc *AnalysisUseCase) AnalyzeImage(ctx context.Context, input AnalyzeImageInput) (string, error) {
	if len(input.Data) == 0 {
		logger.LogAdapterError("analysis", input.FileName, nil)
		return "", errors.AnalysisFailed("Image payload is empty or unreadable", nil)
	}

	text, err := uc.generator.GenerateVision(ctx, analysisInstruction, input.FileType, input.Data)
	if err != nil {
		logger.LogAdapterError("analysis", input.FileName, err)
		return "", errors.AnalysisFailed("Failed to analyze image", err)
	}

	result := strings.TrimSpace(text)
	if result == "" {
		logger.LogAdapterError("analysis", input.FileName, nil)
		return "", errors.AnalysisFailed("Analysis returned empty content", nil)
	}

	return result, nil
}

// AnalyzeUpload runs analysis on a stored upload and records the result
// on its document.
func (uc *AnalysisUseCase) AnalyzeUpload(ctx context.Context, userID, uploadID string) (*entity.Upload, error) {
	upload, err := uc.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if upload.UserID != userID {
		return nil, errors.Forbidden("You do not have access to this upload", nil)
	}

	data, contentType, err := uc.fileStore.DownloadFile(ctx, upload.URL)
	if err != nil {
		logger.LogAdapterError("analysis", upload.FileName, err)
		return nil, errors.AnalysisFailed("Failed to read stored file", err)
	}
	if contentType == "" {
		contentType = upload.FileType
	}

	summary, err := uc.AnalyzeImage(ctx, AnalyzeImageInput{
		FileName: upload.FileName,
		FileType: contentType,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}

	upload.AnalysisResult = &entity.AnalysisResult{
		Summary:    summary,
		AnalyzedAt: time.Now(),
	}

	if err := uc.uploadRepo.Update(ctx, upload); err != nil {
		return nil, err
	}

	return upload, nil
}
