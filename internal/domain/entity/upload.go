package entity

import "time"

// Upload is one medical image/file stored in the blob store, plus its
// optional AI analysis payload.
type Upload struct {
	ID             string    `json:"id" firestore:"id"`
	ConsultationID string    `json:"consultation_id,omitempty" firestore:"consultationId,omitempty"`
	UserID         string    `json:"user_id" firestore:"userId"`
	FileName       string    `json:"file_name" firestore:"fileName"`
	FileType       string    `json:"file_type" firestore:"fileType"`
	URL            string    `json:"url" firestore:"url"`
	UploadedAt     time.Time `json:"uploaded_at" firestore:"uploadedAt"`

	AnalysisResult *AnalysisResult `json:"analysis_result,omitempty" firestore:"analysisResult,omitempty"`
}

type AnalysisResult struct {
	Summary         string      `json:"summary,omitempty" firestore:"summary,omitempty"`
	Conditions      []Condition `json:"conditions,omitempty" firestore:"conditions,omitempty"`
	Observations    []string    `json:"observations,omitempty" firestore:"observations,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty" firestore:"recommendations,omitempty"`
	AnalyzedAt      time.Time   `json:"analyzed_at" firestore:"analyzedAt"`
}

type Condition struct {
	Name       string  `json:"name" firestore:"name"`
	Confidence float64 `json:"confidence" firestore:"confidence"`
}
