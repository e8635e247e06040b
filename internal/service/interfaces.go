// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the application logic of lacnutry.
//
// The centre of the package is the [ProfileStore]: the single in-memory
// owner of the user's profile, favorites, scan history, usage stats and
// onboarding flags, persisted key by key through a store.KeyValueStorage.
// Around it sit the quiz flow, the subscription service, the text
// generation assistant and the static recipe catalog.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/lacnutry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProfileStore owns the user's state. Reads return copies and never block on
// persistence; mutations update memory first and persist in the background.
type ProfileStore interface {
	// Load hydrates the state from storage. It runs once; later calls wait
	// for the first one and return. It never fails: unreadable keys keep
	// their defaults.
	Load(ctx context.Context)

	// Ready is closed when Load has finished.
	Ready() <-chan struct{}

	// Snapshot returns a deep copy of the whole state.
	Snapshot() models.State

	Profile() models.UserProfile
	Favorites() []string
	History() []models.ScanRecord
	Stats() models.StatsData
	IsLoading() bool
	IsFirstAccess() bool
	HasCompletedQuiz() bool
	HasSubscription() bool

	// UpdateProfile replaces the profile wholesale.
	UpdateProfile(profile models.UserProfile)

	// ToggleFavorite flips membership of recipeID and reports whether it is
	// a favorite afterwards.
	ToggleFavorite(recipeID string) bool

	// IsFavorite reports whether recipeID is a favorite.
	IsFavorite(recipeID string) bool

	// AddToHistory prepends record to the bounded scan history, counts the
	// scan and refreshes the last access date. Missing ID and Date are
	// filled in; the stored record is returned.
	AddToHistory(record models.ScanRecord) models.ScanRecord

	// ClearHistory empties the history and waits for the write. A failed
	// write is logged and not returned; the error is only ever ctx.Err().
	ClearHistory(ctx context.Context) error

	// CompleteQuiz marks onboarding done and stores name and email in the
	// profile. It waits for the flag writes and, like ClearHistory, reports
	// only ctx.Err().
	CompleteQuiz(ctx context.Context, name, email string) error

	// CompleteSubscription marks the subscription active and waits for the
	// write, reporting only ctx.Err(). There is no way back.
	CompleteSubscription(ctx context.Context) error

	// Close flushes pending writes, bounded by ctx.
	Close(ctx context.Context) error
}

// QuizService runs onboarding quiz sessions.
type QuizService interface {
	// Start opens a new session positioned on the first question.
	Start(ctx context.Context) (models.QuizStep, error)

	// Current returns the step the session is on.
	Current(ctx context.Context, sessionID string) (models.QuizStep, error)

	// Answer picks an option on a multiple choice question.
	Answer(ctx context.Context, sessionID string, optionIndex int) (models.QuizStep, error)

	// Continue dismisses a motivational interstitial.
	Continue(ctx context.Context, sessionID string) (models.QuizStep, error)

	// SubmitText answers a text question. Answering the last one completes
	// the quiz.
	SubmitText(ctx context.Context, sessionID, value string) (models.QuizStep, error)
}

// SubscriptionService sells and restores the premium subscription. It runs
// as a worker listening to billing events.
type SubscriptionService interface {
	Run(ctx context.Context)
	Stop()

	// Plans returns the paywall offerings.
	Plans() []models.Plan

	// Status reports the subscription flag, an in-flight purchase and the
	// last billing error.
	Status() models.SubscriptionStatus

	// Purchase starts buying planID. The result arrives asynchronously.
	Purchase(ctx context.Context, planID string) error

	// Restore re-grants the subscription from purchases already owned.
	Restore(ctx context.Context) error
}

// AssistantService answers with generated text.
type AssistantService interface {
	// GenerateRecipe asks for a lactose-free recipe using the ingredients.
	GenerateRecipe(ctx context.Context, req models.RecipeRequest) (models.RecipeAnswer, error)

	// Chat continues (or starts, with an empty id) a conversation with the
	// virtual nutritionist.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error)
}

// CatalogService serves the static recipe catalog.
type CatalogService interface {
	List(filter models.RecipeFilter) []models.Recipe
	Get(id string) (models.Recipe, error)

	// Favorites resolves recipe ids, skipping unknown ones.
	Favorites(ids []string) []models.Recipe
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionInfo
}

// TextGenObserver receives one call per text generation request.
type TextGenObserver interface {
	ObserveTextGen(provider string, err error, took time.Duration)
}
