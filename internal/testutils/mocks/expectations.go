// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
	"github.com/KirkDiggler/ordem-api/internal/errors"
	characterrepo "github.com/KirkDiggler/ordem-api/internal/repositories/character"
	charactermock "github.com/KirkDiggler/ordem-api/internal/repositories/character/mock"
	ritualrepo "github.com/KirkDiggler/ordem-api/internal/repositories/ritual"
	ritualmock "github.com/KirkDiggler/ordem-api/internal/repositories/ritual/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character.
// The repository hands out a copy so tests can compare against the original.
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	characterID string, character *ordem.Character, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, characterrepo.GetInput{ID: characterID}).
			Return(nil, err)
	}

	copied := *character
	copied.Conditions = append([]ordem.Condition(nil), character.Conditions...)
	copied.Timers = append([]ordem.ConditionTimer(nil), character.Timers...)

	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: characterID}).
		Return(&characterrepo.GetOutput{Character: &copied}, nil)
}

// ExpectCharacterNotFound sets up a mock expectation for a missing character
func ExpectCharacterNotFound(
	ctx context.Context, mockRepo *charactermock.MockRepository, characterID string,
) *gomock.Call {
	return ExpectCharacterGet(ctx, mockRepo, characterID, nil,
		errors.NotFoundf("character %s not found", characterID))
}

// ExpectCharacterUpdate sets up a mock expectation for persisting a character.
// The stored character is echoed back and captured for assertions.
func ExpectCharacterUpdate(
	ctx context.Context, mockRepo *charactermock.MockRepository, captured **ordem.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			if captured != nil {
				*captured = input.Character
			}
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectCharacterCreate sets up a mock expectation for storing a new character
func ExpectCharacterCreate(
	ctx context.Context, mockRepo *charactermock.MockRepository, captured **ordem.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			if captured != nil {
				*captured = input.Character
			}
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
}

// ExpectRitualGet sets up a mock expectation for a catalog lookup
func ExpectRitualGet(
	ctx context.Context, mockRepo *ritualmock.MockRepository, r *ordem.Ritual, err error,
) *gomock.Call {
	id := ""
	if r != nil {
		id = r.ID
	}
	if err != nil {
		return mockRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, ritualrepo.GetInput{ID: id}).
		Return(&ritualrepo.GetOutput{Ritual: r}, nil)
}
