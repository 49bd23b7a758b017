package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"medassist/internal/domain/entity"
	apperrors "medassist/pkg/errors"
)

type fakeGenerator struct {
	textResponse   string
	textErr        error
	visionResponse string
	visionErr      error

	mu      sync.Mutex
	prompts []string
}

func (g *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	return g.textResponse, g.textErr
}

func (g *fakeGenerator) GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	return g.visionResponse, g.visionErr
}

type fakeConsultationRepo struct {
	consultations map[string]*entity.Consultation

	mu       sync.Mutex
	appended []*entity.Message
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{consultations: make(map[string]*entity.Consultation)}
}

func (r *fakeConsultationRepo) Create(ctx context.Context, c *entity.Consultation) error {
	r.consultations[c.ID] = c
	return nil
}

func (r *fakeConsultationRepo) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	if c, ok := r.consultations[id]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound("Consultation", nil)
}

func (r *fakeConsultationRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Consultation, int64, error) {
	var out []*entity.Consultation
	for _, c := range r.consultations {
		if c.UserID == userID && (status == "" || c.Status == status) {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeConsultationRepo) Update(ctx context.Context, c *entity.Consultation) error {
	r.consultations[c.ID] = c
	return nil
}

func (r *fakeConsultationRepo) Delete(ctx context.Context, id string) error {
	delete(r.consultations, id)
	return nil
}

func (r *fakeConsultationRepo) AppendMessage(ctx context.Context, consultationID string, m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appended = append(r.appended, m)
	return nil
}

func (r *fakeConsultationRepo) ListMessages(ctx context.Context, consultationID string, limit int) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appended, nil
}

func TestSendMessageReturnsAssistantMessage(t *testing.T) {
	gen := &fakeGenerator{textResponse: "  You should rest and drink fluids.  "}
	uc := NewChatUseCase(gen, newFakeConsultationRepo())

	message, err := uc.SendMessage(context.Background(), SendMessageInput{
		UserID:  "user-1",
		Content: "I have a sore throat",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleAssistant, message.Role)
	assert.Equal(t, "You should rest and drink fluids.", message.Content)
	assert.NotEmpty(t, message.ID)
	assert.False(t, message.Timestamp.IsZero())
	assert.Contains(t, gen.prompts[0], "I have a sore throat")
}

func TestSendMessageGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{textErr: errors.New("service unavailable")}
	uc := NewChatUseCase(gen, newFakeConsultationRepo())

	message, err := uc.SendMessage(context.Background(), SendMessageInput{
		UserID:  "user-1",
		Content: "hello",
	})

	assert.Nil(t, message)
	assert.True(t, apperrors.Is(err, "GENERATION_FAILED"))
}

func TestSendMessageEmptyResponseIsFailure(t *testing.T) {
	gen := &fakeGenerator{textResponse: "   \n  "}
	uc := NewChatUseCase(gen, newFakeConsultationRepo())

	message, err := uc.SendMessage(context.Background(), SendMessageInput{
		UserID:  "user-1",
		Content: "hello",
	})

	assert.Nil(t, message)
	assert.True(t, apperrors.Is(err, "GENERATION_FAILED"))
}

func TestSendMessagePersistsTurnOnConsultation(t *testing.T) {
	repo := newFakeConsultationRepo()
	repo.consultations["cons-1"] = &entity.Consultation{ID: "cons-1", UserID: "user-1"}

	gen := &fakeGenerator{textResponse: "Take paracetamol."}
	uc := NewChatUseCase(gen, repo)

	_, err := uc.SendMessage(context.Background(), SendMessageInput{
		UserID:         "user-1",
		Content:        "I have a headache",
		ConsultationID: "cons-1",
	})

	assert.NoError(t, err)
	assert.Len(t, repo.appended, 2)
	assert.Equal(t, entity.RoleUser, repo.appended[0].Role)
	assert.Equal(t, entity.RoleAssistant, repo.appended[1].Role)
}

func TestSendMessageConcurrentCallsAreIndependent(t *testing.T) {
	gen := &fakeGenerator{textResponse: "reply"}
	uc := NewChatUseCase(gen, newFakeConsultationRepo())

	const calls = 8
	results := make([]*entity.Message, calls)

	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			message, err := uc.SendMessage(context.Background(), SendMessageInput{
				UserID:  "user-1",
				Content: "question",
			})
			assert.NoError(t, err)
			results[i] = message
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, message := range results {
		assert.NotEmpty(t, message.ID)
		assert.False(t, seen[message.ID], "message IDs must be distinct")
		seen[message.ID] = true
	}
}

func TestGetHistoryChecksOwnership(t *testing.T) {
	repo := newFakeConsultationRepo()
	repo.consultations["cons-1"] = &entity.Consultation{ID: "cons-1", UserID: "someone-else"}

	uc := NewChatUseCase(&fakeGenerator{}, repo)

	_, err := uc.GetHistory(context.Background(), "user-1", "cons-1", 0)
	assert.True(t, apperrors.Is(err, "FORBIDDEN"))
}
