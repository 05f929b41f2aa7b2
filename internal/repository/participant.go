package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/isoteriksoftware/tictac-api/internal/entity"
)

var ErrParticipantNotFound = errors.New("participant not found")

const participantKeyPrefix = "participant:"

type ParticipantRepository interface {
	CreateOrUpdate(ctx context.Context, participant *entity.Participant) error
	GetByID(ctx context.Context, id string) (*entity.Participant, error)
	GetByName(ctx context.Context, name string) (*entity.Participant, error)
	ListAvailable(ctx context.Context) ([]*entity.Participant, error)
	Count(ctx context.Context) (int, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbParticipant struct {
	client *redis.Client
}

func NewParticipantRepository(client *redis.Client) ParticipantRepository {
	return &dbParticipant{
		client: client,
	}
}

func (that *dbParticipant) CreateOrUpdate(ctx context.Context, participant *entity.Participant) error {
	participantJSON, err := json.Marshal(participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	participantKey := participantKeyPrefix + participant.ID
	err = that.client.Set(ctx, participantKey, participantJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set participant: %w", err)
	}

	return nil
}

func (that *dbParticipant) GetByID(ctx context.Context, id string) (*entity.Participant, error) {
	participantKey := participantKeyPrefix + id

	response, err := that.client.Get(ctx, participantKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrParticipantNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get participant by ID: %w", err)
	}

	var existingParticipant entity.Participant
	if err = json.Unmarshal([]byte(response), &existingParticipant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &existingParticipant, nil
}

// GetByName does an exact-match scan over all participants. O(n) is fine for
// the expected population size.
func (that *dbParticipant) GetByName(ctx context.Context, name string) (*entity.Participant, error) {
	var found *entity.Participant

	err := that.scanParticipants(ctx, func(participant *entity.Participant) {
		if found == nil && participant.Name == name {
			found = participant
		}
	})
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, ErrParticipantNotFound
	}

	return found, nil
}

func (that *dbParticipant) ListAvailable(ctx context.Context) ([]*entity.Participant, error) {
	available := make([]*entity.Participant, 0)

	err := that.scanParticipants(ctx, func(participant *entity.Participant) {
		if participant.IsAvailable() {
			available = append(available, participant)
		}
	})
	if err != nil {
		return nil, err
	}

	return available, nil
}

func (that *dbParticipant) Count(ctx context.Context) (int, error) {
	count := 0

	iter := that.client.Scan(ctx, 0, participantKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}

	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	return count, nil
}

func (that *dbParticipant) DeleteByID(ctx context.Context, id string) error {
	participantKey := participantKeyPrefix + id

	err := that.client.Del(ctx, participantKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete participant by ID: %w", err)
	}

	return nil
}

func (that *dbParticipant) scanParticipants(ctx context.Context, visit func(*entity.Participant)) error {
	iter := that.client.Scan(ctx, 0, participantKeyPrefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		response, err := that.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to get participant: %w", err)
		}

		var participant entity.Participant
		if err = json.Unmarshal([]byte(response), &participant); err != nil {
			return fmt.Errorf("failed to unmarshal participant: %w", err)
		}

		visit(&participant)
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan participants: %w", err)
	}

	return nil
}
