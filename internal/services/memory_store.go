package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/concurso-rubens-artero/app-inscricao/internal/models"
)

// MemoryParticipantStore keeps participants in process. It enforces the
// same uniqueness rules as the MongoDB indexes and backs tests and local
// runs without a database.
type MemoryParticipantStore struct {
	mu           sync.RWMutex
	participants map[string]models.Participant
}

// NewMemoryParticipantStore creates an empty store
func NewMemoryParticipantStore() *MemoryParticipantStore {
	return &MemoryParticipantStore{participants: make(map[string]models.Participant)}
}

func (s *MemoryParticipantStore) Insert(_ context.Context, participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.participants {
		switch {
		case existing.CPF == participant.CPF:
			return models.ErrDuplicateCPF
		case existing.Email == participant.Email:
			return models.ErrDuplicateEmail
		case existing.RegistrationNumber == participant.RegistrationNumber:
			return errRegistrationNumberTaken
		}
	}
	s.participants[participant.ID] = *participant
	return nil
}

// Len returns the number of stored participants
func (s *MemoryParticipantStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.participants)
}

func (s *MemoryParticipantStore) find(match func(models.Participant) bool) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.participants {
		if match(p) {
			found := p
			return &found, nil
		}
	}
	return nil, models.ErrParticipantNotFound
}

func (s *MemoryParticipantStore) FindByID(_ context.Context, id string) (*models.Participant, error) {
	return s.find(func(p models.Participant) bool { return p.ID == id })
}

func (s *MemoryParticipantStore) FindByEmail(_ context.Context, email string) (*models.Participant, error) {
	email = strings.ToLower(email)
	return s.find(func(p models.Participant) bool { return p.Email == email })
}

func (s *MemoryParticipantStore) FindByRegistrationNumber(_ context.Context, number string) (*models.Participant, error) {
	return s.find(func(p models.Participant) bool { return p.RegistrationNumber == number })
}

func (s *MemoryParticipantStore) ExistsByCPF(_ context.Context, cpfDigits string) (bool, error) {
	_, err := s.find(func(p models.Participant) bool { return p.CPF == cpfDigits })
	return err == nil, nil
}

func (s *MemoryParticipantStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	_, err := s.find(func(p models.Participant) bool { return p.Email == email })
	return err == nil, nil
}

func (s *MemoryParticipantStore) UpdatePassword(_ context.Context, id, passwordHash string, mustChange bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok {
		return models.ErrParticipantNotFound
	}
	p.PasswordHash = passwordHash
	p.MustChangePassword = mustChange
	s.participants[id] = p
	return nil
}

// MemoryPhotoStore keeps photo metadata in process
type MemoryPhotoStore struct {
	mu     sync.RWMutex
	photos map[string]models.Photo
}

// NewMemoryPhotoStore creates an empty store
func NewMemoryPhotoStore() *MemoryPhotoStore {
	return &MemoryPhotoStore{photos: make(map[string]models.Photo)}
}

func (s *MemoryPhotoStore) Insert(_ context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos[photo.ID] = *photo
	return nil
}

func (s *MemoryPhotoStore) FindByID(_ context.Context, id string) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photo, ok := s.photos[id]
	if !ok {
		return nil, models.ErrPhotoNotFound
	}
	return &photo, nil
}

func (s *MemoryPhotoStore) ListByParticipant(_ context.Context, participantID string) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photos := []models.Photo{}
	for _, photo := range s.photos {
		if photo.ParticipantID == participantID {
			photos = append(photos, photo)
		}
	}
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

func (s *MemoryPhotoStore) CountByParticipant(ctx context.Context, participantID string) (int64, error) {
	photos, err := s.ListByParticipant(ctx, participantID)
	return int64(len(photos)), err
}

func (s *MemoryPhotoStore) Update(_ context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[photo.ID]; !ok {
		return models.ErrPhotoNotFound
	}
	s.photos[photo.ID] = *photo
	return nil
}

func (s *MemoryPhotoStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.photos[id]; !ok {
		return models.ErrPhotoNotFound
	}
	delete(s.photos, id)
	return nil
}
