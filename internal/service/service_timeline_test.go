package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/mock"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTimelineSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*timelineService,
	*mock.MockIntelRepository,
	*mock.MockTargetRepository,
	*mock.MockTimelineRepository,
) {
	t.Helper()

	mockIntel := mock.NewMockIntelRepository(ctrl)
	mockTargets := mock.NewMockTargetRepository(ctrl)
	mockTimeline := mock.NewMockTimelineRepository(ctrl)

	repos := &store.Repositories{
		IntelRepository:    mockIntel,
		TargetRepository:   mockTargets,
		TimelineRepository: mockTimeline,
	}

	svc := NewTimelineService(repos, logger.Nop()).(*timelineService)
	return svc, mockIntel, mockTargets, mockTimeline
}

func date(t *testing.T, value string) *time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

// intelFixture is the full per-target record set fed to one generation run.
// Zero-value fields read as empty tables.
type intelFixture struct {
	addresses   []models.Address
	social      []models.SocialMediaAccount
	employment  []models.Employment
	credentials []models.Credential
	media       []models.MediaFile
	network     []models.NetworkData
	phones      []models.PhoneNumber
}

func expectIntelScans(m *mock.MockIntelRepository, ctx context.Context, targetID int64, fx intelFixture) {
	m.EXPECT().AddressesByTarget(ctx, targetID).Return(fx.addresses, nil)
	m.EXPECT().SocialMediaByTarget(ctx, targetID).Return(fx.social, nil)
	m.EXPECT().EmploymentByTarget(ctx, targetID).Return(fx.employment, nil)
	m.EXPECT().CredentialsByTarget(ctx, targetID).Return(fx.credentials, nil)
	m.EXPECT().MediaByTarget(ctx, targetID).Return(fx.media, nil)
	m.EXPECT().NetworkDataByTarget(ctx, targetID).Return(fx.network, nil)
	m.EXPECT().PhonesByTarget(ctx, targetID).Return(fx.phones, nil)
}

// captureInserts assumes every duplicate check misses and records each
// inserted event in generation order.
func captureInserts(mockTimeline *mock.MockTimelineRepository, inserted *[]models.TimelineEvent) {
	mockTimeline.EXPECT().
		EventExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		AnyTimes()
	mockTimeline.EXPECT().
		InsertEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
			*inserted = append(*inserted, event)
			return event, nil
		}).
		AnyTimes()
}

func eventByTitle(t *testing.T, events []models.TimelineEvent, title string) models.TimelineEvent {
	t.Helper()

	for _, event := range events {
		if event.Title == title {
			return event
		}
	}
	t.Fatalf("no event titled %q", title)
	return models.TimelineEvent{}
}

// ─────────────────────────────────────────────
// GenerateTimelineForTarget
// ─────────────────────────────────────────────

func TestGenerateTimelineForTarget_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTimelineSvc(t, ctrl)

	count, err := svc.GenerateTimelineForTarget(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerateTimelineForTarget_ForeignTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, _ := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(false, nil)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerateTimelineForTarget_AllRecordKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)

	expectIntelScans(mockIntel, ctx, 10, intelFixture{
		addresses: []models.Address{
			{ID: 1, TargetID: 10, Street: "Baker St", City: "London", Country: "UK", Verified: true, LastSeen: date(t, "2024-03-01")},
		},
		social: []models.SocialMediaAccount{
			{ID: 2, TargetID: 10, Platform: "twitter", Username: "ghost99", LastActivity: date(t, "2024-04-15")},
		},
		employment: []models.Employment{
			{ID: 3, TargetID: 10, Company: "Acme", Position: "Engineer", StartDate: date(t, "2020-01-10"), EndDate: date(t, "2023-06-30"), IsCurrent: false},
		},
		credentials: []models.Credential{
			{ID: 4, TargetID: 10, Email: "ghost@example.com", Source: "CorpLeak2023", BreachDate: date(t, "2023-09-01")},
		},
		media: []models.MediaFile{
			{ID: 5, TargetID: 10, FileName: "cam01.jpg", MediaType: "photo", CapturedDate: date(t, "2024-02-20")},
		},
		network: []models.NetworkData{
			{ID: 6, TargetID: 10, IPAddress: "10.0.5.7", Hostname: "vpn.example.net", FirstSeen: date(t, "2024-01-05")},
		},
		phones: []models.PhoneNumber{
			{ID: 7, TargetID: 10, Number: "+15550100", Carrier: "T-Mobile", LastSeen: date(t, "2024-05-02")},
		},
	})

	var inserted []models.TimelineEvent
	captureInserts(mockTimeline, &inserted)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
	require.Len(t, inserted, 8)

	address := eventByTitle(t, inserted, "Observed at London")
	assert.Equal(t, models.EventAddress, address.EventType)
	assert.Equal(t, models.ImportanceHigh, address.Importance)
	assert.Equal(t, "Baker St, London, UK", address.Description)
	assert.Equal(t, "addresses", address.SourceTable)
	assert.Equal(t, "1", address.SourceID)

	social := eventByTitle(t, inserted, "Activity on twitter")
	assert.Equal(t, models.ImportanceNormal, social.Importance)
	assert.Equal(t, `Account "ghost99" last active`, social.Description)

	started := eventByTitle(t, inserted, "Started at Acme")
	assert.Equal(t, "Engineer at Acme", started.Description)
	assert.Equal(t, "started", started.Metadata["phase"])

	left := eventByTitle(t, inserted, "Left Acme")
	assert.Equal(t, *date(t, "2023-06-30"), left.EventDate)
	assert.Equal(t, "ended", left.Metadata["phase"])

	breach := eventByTitle(t, inserted, "Credential exposed in breach")
	assert.Equal(t, models.ImportanceCritical, breach.Importance)
	assert.Equal(t, "Email ghost@example.com found in CorpLeak2023", breach.Description)

	phone := eventByTitle(t, inserted, "Phone number observed: +15550100")
	assert.Equal(t, models.ImportanceNormal, phone.Importance)

	eventByTitle(t, inserted, "Media captured: cam01.jpg")
	eventByTitle(t, inserted, "First seen from 10.0.5.7")
}

func TestGenerateTimelineForTarget_NilDatesSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)

	// a dateless address and a current position with an end date on record:
	// only the start event qualifies
	expectIntelScans(mockIntel, ctx, 10, intelFixture{
		addresses: []models.Address{
			{ID: 1, TargetID: 10, City: "London"},
		},
		employment: []models.Employment{
			{ID: 3, TargetID: 10, Company: "Acme", StartDate: date(t, "2020-01-10"), EndDate: date(t, "2023-06-30"), IsCurrent: true},
		},
	})

	var inserted []models.TimelineEvent
	captureInserts(mockTimeline, &inserted)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, inserted, 1)
	assert.Equal(t, "Started at Acme", inserted[0].Title)
}

func TestGenerateTimelineForTarget_ExistingEventsCountWithoutInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)

	expectIntelScans(mockIntel, ctx, 10, intelFixture{
		network: []models.NetworkData{
			{ID: 6, TargetID: 10, IPAddress: "10.0.5.7", FirstSeen: date(t, "2024-01-05")},
		},
	})

	// duplicate check hits, no InsertEvent expectation at all
	mockTimeline.EXPECT().
		EventExists(ctx, int64(10), "network_data", "6", *date(t, "2024-01-05")).
		Return(true, nil)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerateTimelineForTarget_InsertFailureContinuesScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)

	expectIntelScans(mockIntel, ctx, 10, intelFixture{
		addresses: []models.Address{
			{ID: 1, TargetID: 10, City: "London", LastSeen: date(t, "2024-03-01")},
			{ID: 2, TargetID: 10, City: "Paris", LastSeen: date(t, "2024-03-02")},
		},
	})

	mockTimeline.EXPECT().
		EventExists(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(2)
	gomock.InOrder(
		mockTimeline.EXPECT().
			InsertEvent(gomock.Any(), gomock.Any()).
			Return(models.TimelineEvent{}, errors.New("write failed")),
		mockTimeline.EXPECT().
			InsertEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event models.TimelineEvent) (models.TimelineEvent, error) {
				assert.Equal(t, "Observed at Paris", event.Title)
				return event, nil
			}),
	)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGenerateTimelineForTarget_FetchFailureSkipsTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)

	mockIntel.EXPECT().AddressesByTarget(ctx, int64(10)).Return(nil, errors.New("db down"))
	mockIntel.EXPECT().SocialMediaByTarget(ctx, int64(10)).Return(nil, nil)
	mockIntel.EXPECT().EmploymentByTarget(ctx, int64(10)).Return(nil, nil)
	mockIntel.EXPECT().CredentialsByTarget(ctx, int64(10)).Return(nil, nil)
	mockIntel.EXPECT().MediaByTarget(ctx, int64(10)).Return(nil, nil)
	mockIntel.EXPECT().NetworkDataByTarget(ctx, int64(10)).Return([]models.NetworkData{
		{ID: 6, TargetID: 10, IPAddress: "10.0.5.7", FirstSeen: date(t, "2024-01-05")},
	}, nil)
	mockIntel.EXPECT().PhonesByTarget(ctx, int64(10)).Return(nil, nil)

	var inserted []models.TimelineEvent
	captureInserts(mockTimeline, &inserted)

	count, err := svc.GenerateTimelineForTarget(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// ─────────────────────────────────────────────
// RegenerateTimeline
// ─────────────────────────────────────────────

func TestRegenerateTimeline_ClearsBeforeRebuilding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	// ownership is checked once by Regenerate and again by the inner generation
	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil).Times(2)

	mockTimeline.EXPECT().DeleteEventsByTarget(ctx, int64(10)).Return(nil)

	expectIntelScans(mockIntel, ctx, 10, intelFixture{
		network: []models.NetworkData{
			{ID: 6, TargetID: 10, IPAddress: "10.0.5.7", FirstSeen: date(t, "2024-01-05")},
		},
	})

	var inserted []models.TimelineEvent
	captureInserts(mockTimeline, &inserted)

	count, err := svc.RegenerateTimeline(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, inserted, 1)
	assert.Equal(t, "First seen from 10.0.5.7", inserted[0].Title)
}

func TestRegenerateTimeline_ClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)
	mockTimeline.EXPECT().DeleteEventsByTarget(ctx, int64(10)).Return(errors.New("db down"))

	count, err := svc.RegenerateTimeline(ctx, 10)
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestRegenerateTimeline_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTimelineSvc(t, ctrl)

	count, err := svc.RegenerateTimeline(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ─────────────────────────────────────────────
// GetTargetTimeline / DeleteTimelineEvent
// ─────────────────────────────────────────────

func TestGetTargetTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	stored := []models.TimelineEvent{{EventID: 1, TargetID: 10, Title: "Observed at London"}}

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)
	mockTimeline.EXPECT().EventsByTarget(ctx, int64(10)).Return(stored, nil)

	events, err := svc.GetTargetTimeline(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, stored, events)
}

func TestGetTargetTimeline_ForeignTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, _ := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(false, nil)

	events, err := svc.GetTargetTimeline(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDeleteTimelineEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTimeline.EXPECT().DeleteEvent(ctx, int64(5), int64(42)).Return(nil)

	require.NoError(t, svc.DeleteTimelineEvent(ctx, 5))
}

func TestDeleteTimelineEvent_NoSessionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTimelineSvc(t, ctrl)

	require.NoError(t, svc.DeleteTimelineEvent(context.Background(), 5))
}

// ─────────────────────────────────────────────
// GetTimelineStats
// ─────────────────────────────────────────────

func TestGetTimelineStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)
	mockTimeline.EXPECT().EventsByTarget(ctx, int64(10)).Return([]models.TimelineEvent{
		{EventType: models.EventCredential, Importance: models.ImportanceCritical, EventDate: *date(t, "2023-09-01")},
		{EventType: models.EventAddress, Importance: models.ImportanceHigh, EventDate: *date(t, "2024-03-01")},
		{EventType: models.EventAddress, Importance: models.ImportanceNormal, EventDate: *date(t, "2024-01-15")},
	}, nil)

	stats, err := svc.GetTimelineStats(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, map[string]int{models.EventAddress: 2, models.EventCredential: 1}, stats.ByType)
	assert.Equal(t, map[string]int{
		models.ImportanceCritical: 1,
		models.ImportanceHigh:     1,
		models.ImportanceNormal:   1,
	}, stats.ByImportance)
	require.NotNil(t, stats.Earliest)
	require.NotNil(t, stats.Latest)
	assert.Equal(t, *date(t, "2023-09-01"), *stats.Earliest)
	assert.Equal(t, *date(t, "2024-03-01"), *stats.Latest)
}

func TestGetTimelineStats_EmptyTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTargets, mockTimeline := newTestTimelineSvc(t, ctrl)
	ctx := authedCtx(42)

	mockTargets.EXPECT().TargetOwnedBy(ctx, int64(10), int64(42)).Return(true, nil)
	mockTimeline.EXPECT().EventsByTarget(ctx, int64(10)).Return(nil, nil)

	stats, err := svc.GetTimelineStats(ctx, 10)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEvents)
	assert.Empty(t, stats.ByType)
	assert.Nil(t, stats.Earliest)
	assert.Nil(t, stats.Latest)
}

func TestGetTimelineStats_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestTimelineSvc(t, ctrl)

	stats, err := svc.GetTimelineStats(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEvents)
	assert.NotNil(t, stats.ByType)
	assert.NotNil(t, stats.ByImportance)
}
