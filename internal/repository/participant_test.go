package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoteriksoftware/tictac-api/internal/entity"
	"github.com/isoteriksoftware/tictac-api/testing/suite"
)

func TestParticipantRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	participantRepo := NewParticipantRepository(st.Storage)

	// Given: a participant with an id and a name
	participant := &entity.Participant{
		ID:     "connection-1",
		Name:   "Alice",
		Status: entity.StatusAvailable,
	}

	// When: CreateOrUpdate is called
	err := participantRepo.CreateOrUpdate(ctx, participant)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestParticipantRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		participantRepo := NewParticipantRepository(st.Storage)

		// Given: a stored participant
		participant := &entity.Participant{
			ID:     "connection-1",
			Name:   "Alice",
			Status: entity.StatusAvailable,
		}

		err := participantRepo.CreateOrUpdate(ctx, participant)
		require.NoError(t, err)

		// When: GetByID is called with the existing id
		retrieved, err := participantRepo.GetByID(ctx, participant.ID)

		// Then: the retrieved participant matches the saved one
		require.NoError(t, err)
		assert.Equal(t, participant.ID, retrieved.ID)
		assert.Equal(t, participant.Name, retrieved.Name)
		assert.Equal(t, participant.Status, retrieved.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		participantRepo := NewParticipantRepository(st.Storage)

		// When: GetByID is called with a non-existent id
		retrieved, err := participantRepo.GetByID(ctx, "no-such-connection")

		// Then: ErrParticipantNotFound should be returned
		require.Error(t, err)
		assert.Equal(t, ErrParticipantNotFound, err)
		assert.Nil(t, retrieved)
	})
}

func TestParticipantRepository_GetByName(t *testing.T) {
	t.Run("GetByName_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		participantRepo := NewParticipantRepository(st.Storage)

		// Given: two stored participants
		alice := &entity.Participant{ID: "connection-1", Name: "Alice", Status: entity.StatusAvailable}
		bob := &entity.Participant{ID: "connection-2", Name: "Bob", Status: entity.StatusAvailable}

		require.NoError(t, participantRepo.CreateOrUpdate(ctx, alice))
		require.NoError(t, participantRepo.CreateOrUpdate(ctx, bob))

		// When: GetByName is called with Bob's name
		retrieved, err := participantRepo.GetByName(ctx, "Bob")

		// Then: Bob's record comes back
		require.NoError(t, err)
		assert.Equal(t, bob.ID, retrieved.ID)
	})

	t.Run("GetByName_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		participantRepo := NewParticipantRepository(st.Storage)

		// When: GetByName is called on an empty registry
		retrieved, err := participantRepo.GetByName(ctx, "Alice")

		// Then: ErrParticipantNotFound should be returned
		require.Error(t, err)
		assert.Equal(t, ErrParticipantNotFound, err)
		assert.Nil(t, retrieved)
	})
}

func TestParticipantRepository_ListAvailable(t *testing.T) {
	ctx, st := suite.New(t)

	participantRepo := NewParticipantRepository(st.Storage)

	// Given: one available, one engaged and one idle participant
	alice := &entity.Participant{ID: "connection-1", Name: "Alice", Status: entity.StatusAvailable}
	bob := &entity.Participant{ID: "connection-2", Name: "Bob", Status: entity.StatusEngaged}
	carol := &entity.Participant{ID: "connection-3", Name: "Carol", Status: entity.StatusIdle}

	require.NoError(t, participantRepo.CreateOrUpdate(ctx, alice))
	require.NoError(t, participantRepo.CreateOrUpdate(ctx, bob))
	require.NoError(t, participantRepo.CreateOrUpdate(ctx, carol))

	// When: ListAvailable is called
	available, err := participantRepo.ListAvailable(ctx)

	// Then: only Alice is listed
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, alice.ID, available[0].ID)
}

func TestParticipantRepository_Count(t *testing.T) {
	ctx, st := suite.New(t)

	participantRepo := NewParticipantRepository(st.Storage)

	// Given: an empty registry
	count, err := participantRepo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	// When: two participants are stored
	require.NoError(t, participantRepo.CreateOrUpdate(ctx, &entity.Participant{ID: "connection-1", Name: "Alice"}))
	require.NoError(t, participantRepo.CreateOrUpdate(ctx, &entity.Participant{ID: "connection-2", Name: "Bob"}))

	// Then: both are counted
	count, err = participantRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestParticipantRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	participantRepo := NewParticipantRepository(st.Storage)

	// Given: a stored participant
	participant := &entity.Participant{ID: "connection-1", Name: "Alice"}
	require.NoError(t, participantRepo.CreateOrUpdate(ctx, participant))

	// When: DeleteByID is called
	err := participantRepo.DeleteByID(ctx, participant.ID)

	// Then: the participant is gone
	require.NoError(t, err)

	_, err = participantRepo.GetByID(ctx, participant.ID)
	assert.Equal(t, ErrParticipantNotFound, err)
}
