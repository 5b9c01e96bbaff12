package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mgavrilov/blackraven/internal/config"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/mock"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPatternSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	policies PatternPolicies,
) (
	*patternService,
	*mock.MockIntelRepository,
	*mock.MockPatternRepository,
) {
	t.Helper()

	mockIntel := mock.NewMockIntelRepository(ctrl)
	mockPatterns := mock.NewMockPatternRepository(ctrl)

	repos := &store.Repositories{
		IntelRepository:   mockIntel,
		PatternRepository: mockPatterns,
	}

	svc := NewPatternService(repos, policies, logger.Nop()).(*patternService)
	return svc, mockIntel, mockPatterns
}

func authedCtx(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

func defaultPolicies() PatternPolicies {
	return DefaultPatternPolicies(config.Patterns{})
}

func social(targetID int64, platform, username string) models.SocialMediaAccount {
	return models.SocialMediaAccount{TargetID: targetID, Platform: platform, Username: username}
}

func credential(targetID int64, email, hash string) models.Credential {
	return models.Credential{TargetID: targetID, Email: email, PasswordHash: hash}
}

func network(targetID int64, ip string) models.NetworkData {
	return models.NetworkData{TargetID: targetID, IPAddress: ip}
}

// expectInsert wires the read-then-write upsert for a brand new key and
// captures the inserted pattern.
func expectInsert(mockPatterns *mock.MockPatternRepository, patternType, patternValue string, captured *models.PatternMatch) {
	mockPatterns.EXPECT().
		FindByKey(gomock.Any(), patternType, patternValue).
		Return(models.PatternMatch{}, store.ErrPatternNotFound)
	mockPatterns.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.PatternMatch) (models.PatternMatch, error) {
			*captured = p
			return p, nil
		})
}

// ─────────────────────────────────────────────
// DetectUsernamePatterns
// ─────────────────────────────────────────────

func TestDetectUsernamePatterns_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository expectations: an unauthenticated call must not touch the store
	svc, _, _ := newTestPatternSvc(t, ctrl, defaultPolicies())

	count, err := svc.DetectUsernamePatterns(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDetectUsernamePatterns_SingleTargetBelowThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, _ := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	// same username twice, but on one target only
	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "ghost99"),
		social(1, "github", "ghost99"),
	}, nil)

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDetectUsernamePatterns_TwoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "Ghost99"),
		social(2, "github", "ghost99"),
		social(3, "twitter", "someoneelse"),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternUsernameReuse, "ghost99", &saved)

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// mixed case collapses into one lowercase key
	assert.Equal(t, "ghost99", saved.PatternValue)
	assert.Equal(t, []int64{1, 2}, saved.MatchingTargets)
	assert.Equal(t, 2, saved.MatchCount)
	assert.Equal(t, 60, saved.ConfidenceScore)
	assert.False(t, saved.IsAnomaly)

	platforms, ok := saved.Metadata["platforms"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, platforms, 2)
}

func TestDetectUsernamePatterns_AnomalyAboveThreeTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "ghost99"),
		social(2, "github", "ghost99"),
		social(3, "reddit", "ghost99"),
		social(4, "vk", "ghost99"),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternUsernameReuse, "ghost99", &saved)

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 4, saved.MatchCount)
	assert.Equal(t, 80, saved.ConfidenceScore)
	assert.True(t, saved.IsAnomaly)
}

func TestDetectUsernamePatterns_ExistingKeyIsUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "ghost99"),
		social(2, "github", "ghost99"),
	}, nil)

	mockPatterns.EXPECT().
		FindByKey(gomock.Any(), models.PatternUsernameReuse, "ghost99").
		Return(models.PatternMatch{PatternID: 7}, nil)
	mockPatterns.EXPECT().
		UpdateByKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.PatternMatch) error {
			assert.Equal(t, 2, p.MatchCount)
			return nil
		})

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDetectUsernamePatterns_FetchFailureIsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, _ := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return(nil, errors.New("db down"))

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDetectUsernamePatterns_WriteFailureContinuesBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "ghost99"),
		social(2, "github", "ghost99"),
		social(1, "twitter", "shadow"),
		social(3, "github", "shadow"),
	}, nil)

	// both keys are new; one insert fails, the other lands
	mockPatterns.EXPECT().
		FindByKey(gomock.Any(), models.PatternUsernameReuse, gomock.Any()).
		Return(models.PatternMatch{}, store.ErrPatternNotFound).
		Times(2)
	gomock.InOrder(
		mockPatterns.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(models.PatternMatch{}, errors.New("write failed")),
		mockPatterns.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.PatternMatch) (models.PatternMatch, error) {
				return p, nil
			}),
	)

	count, err := svc.DetectUsernamePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// ─────────────────────────────────────────────
// DetectEmailPatterns
// ─────────────────────────────────────────────

func TestDetectEmailPatterns_ExactMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return([]models.Credential{
		credential(1, "Mallory@Example.com", ""),
		credential(2, "mallory@example.com", ""),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternEmail, "mallory@example.com", &saved)

	count, err := svc.DetectEmailPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 2, saved.MatchCount)
	assert.Equal(t, 70, saved.ConfidenceScore)
	assert.False(t, saved.IsAnomaly)
	assert.Equal(t, "exact_match", saved.Metadata["type"])
}

func TestDetectEmailPatterns_DomainGroupingThreshold(t *testing.T) {
	tests := []struct {
		name        string
		targets     int
		wantPattern bool
	}{
		{name: "three targets stay below the domain threshold", targets: 3, wantPattern: false},
		{name: "four targets cross the domain threshold", targets: 4, wantPattern: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
			ctx := authedCtx(42)

			credentials := make([]models.Credential, 0, tt.targets)
			for i := range tt.targets {
				// distinct local parts keep the exact-match grouping quiet
				credentials = append(credentials, credential(int64(i+1), string(rune('a'+i))+"@corp.example", ""))
			}
			mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return(credentials, nil)

			var saved models.PatternMatch
			if tt.wantPattern {
				expectInsert(mockPatterns, models.PatternEmail, "@corp.example", &saved)
			}

			count, err := svc.DetectEmailPatterns(ctx)
			require.NoError(t, err)

			if !tt.wantPattern {
				assert.Zero(t, count)
				return
			}

			assert.Equal(t, 1, count)
			assert.Equal(t, "@corp.example", saved.PatternValue)
			assert.Equal(t, 4, saved.MatchCount)
			assert.Equal(t, 50, saved.ConfidenceScore)
			assert.False(t, saved.IsAnomaly)
			assert.Equal(t, "domain_match", saved.Metadata["type"])
		})
	}
}

func TestDetectEmailPatterns_ExactAndDomainOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	// the same mailbox on two targets plus three more at the same domain:
	// one exact_match row and one domain_match row, overlapping membership
	mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return([]models.Credential{
		credential(1, "shared@corp.example", ""),
		credential(2, "shared@corp.example", ""),
		credential(3, "c@corp.example", ""),
		credential(4, "d@corp.example", ""),
	}, nil)

	var exact, domain models.PatternMatch
	expectInsert(mockPatterns, models.PatternEmail, "shared@corp.example", &exact)
	expectInsert(mockPatterns, models.PatternEmail, "@corp.example", &domain)

	count, err := svc.DetectEmailPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, 2, exact.MatchCount)
	assert.Equal(t, 4, domain.MatchCount)
}

// ─────────────────────────────────────────────
// DetectPasswordPatterns
// ─────────────────────────────────────────────

func TestDetectPasswordPatterns_TruncatedValueFullHashMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	const hash = "5f4dcc3b5aa765d61d8327deb882cf99"

	mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return([]models.Credential{
		credential(1, "a@example.com", hash),
		credential(2, "b@example.com", hash),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternPassword, "5f4dcc3b5aa765d6...", &saved)

	count, err := svc.DetectPasswordPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, "5f4dcc3b5aa765d6...", saved.PatternValue)
	assert.Equal(t, hash, saved.Metadata["full_hash"])
	assert.Equal(t, 2, saved.MatchCount)
	assert.Equal(t, 80, saved.ConfidenceScore)
	assert.False(t, saved.IsAnomaly)
}

func TestDetectPasswordPatterns_AnomalyAboveTwoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	const hash = "5f4dcc3b5aa765d61d8327deb882cf99"

	mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return([]models.Credential{
		credential(1, "", hash),
		credential(2, "", hash),
		credential(3, "", hash),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternPassword, "5f4dcc3b5aa765d6...", &saved)

	count, err := svc.DetectPasswordPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 90, saved.ConfidenceScore)
	assert.True(t, saved.IsAnomaly)
}

// ─────────────────────────────────────────────
// DetectIPRangePatterns
// ─────────────────────────────────────────────

func TestDetectIPRangePatterns_SubnetGrouping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().NetworkDataByOwner(ctx, int64(42)).Return([]models.NetworkData{
		network(1, "10.0.5.7"),
		network(2, "10.0.5.200"),
		network(3, "10.0.5.13"),
		network(4, "not-an-ip"),   // skipped: not four parts
		network(5, "fe80::1"),     // skipped: not four parts
		network(6, "192.168.1.1"), // different subnet, alone
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternIPRange, "10.0.5.0/24", &saved)

	count, err := svc.DetectIPRangePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, "10.0.5.0/24", saved.PatternValue)
	assert.Equal(t, []int64{1, 2, 3}, saved.MatchingTargets)
	assert.Equal(t, 3, saved.MatchCount)
	assert.Equal(t, 64, saved.ConfidenceScore)
	assert.False(t, saved.IsAnomaly)
}

func TestDetectIPRangePatterns_SyntacticGroupingWithoutValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	// four parts is the only structural check by default, so an out-of-range
	// octet still groups
	mockIntel.EXPECT().NetworkDataByOwner(ctx, int64(42)).Return([]models.NetworkData{
		network(1, "300.1.1.1"),
		network(2, "300.1.1.2"),
		network(3, "300.1.1.3"),
	}, nil)

	var saved models.PatternMatch
	expectInsert(mockPatterns, models.PatternIPRange, "300.1.1.0/24", &saved)

	count, err := svc.DetectIPRangePatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, saved.MatchCount)
}

func TestDetectIPRangePatterns_OctetValidationEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	policies := DefaultPatternPolicies(config.Patterns{ValidateIPs: true})
	svc, mockIntel, _ := newTestPatternSvc(t, ctrl, policies)
	ctx := authedCtx(42)

	mockIntel.EXPECT().NetworkDataByOwner(ctx, int64(42)).Return([]models.NetworkData{
		network(1, "300.1.1.1"),
		network(2, "300.1.1.2"),
		network(3, "300.1.1.3"),
	}, nil)

	count, err := svc.DetectIPRangePatterns(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// ─────────────────────────────────────────────
// RunAllPatternDetection
// ─────────────────────────────────────────────

func TestRunAllPatternDetection_SummarySumsCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockIntel, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockIntel.EXPECT().SocialMediaByOwner(ctx, int64(42)).Return([]models.SocialMediaAccount{
		social(1, "twitter", "ghost99"),
		social(2, "github", "ghost99"),
	}, nil)
	// credentials fetched twice: once per email detector, once per password detector
	mockIntel.EXPECT().CredentialsByOwner(ctx, int64(42)).Return([]models.Credential{
		credential(1, "shared@example.com", "aaaa"),
		credential(2, "shared@example.com", "bbbb"),
	}, nil).Times(2)
	mockIntel.EXPECT().NetworkDataByOwner(ctx, int64(42)).Return(nil, nil)

	var username, email models.PatternMatch
	expectInsert(mockPatterns, models.PatternUsernameReuse, "ghost99", &username)
	expectInsert(mockPatterns, models.PatternEmail, "shared@example.com", &email)

	summary, err := svc.RunAllPatternDetection(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.UsernamePatterns)
	assert.Equal(t, 1, summary.EmailPatterns)
	assert.Zero(t, summary.PasswordPatterns)
	assert.Zero(t, summary.IPRangePatterns)
	assert.Equal(t, 2, summary.Total)
}

func TestRunAllPatternDetection_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPatternSvc(t, ctrl, defaultPolicies())

	summary, err := svc.RunAllPatternDetection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DetectionSummary{}, summary)
}

// ─────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────

func TestGetPatternMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	now := time.Now()
	stored := []models.PatternMatch{{PatternID: 1, PatternType: models.PatternUsernameReuse, FirstSeen: now, LastSeen: now}}

	mockPatterns.EXPECT().List(ctx, models.PatternUsernameReuse).Return(stored, nil)

	patterns, err := svc.GetPatternMatches(ctx, models.PatternUsernameReuse)
	require.NoError(t, err)
	assert.Equal(t, stored, patterns)
}

func TestGetPatternMatches_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPatternSvc(t, ctrl, defaultPolicies())

	patterns, err := svc.GetPatternMatches(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestGetAnomalies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockPatterns.EXPECT().Anomalies(ctx).Return([]models.PatternMatch{{PatternID: 3, IsAnomaly: true}}, nil)

	anomalies, err := svc.GetAnomalies(ctx)
	require.NoError(t, err)
	require.Len(t, anomalies, 1)
	assert.True(t, anomalies[0].IsAnomaly)
}

func TestDeletePattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPatterns := newTestPatternSvc(t, ctrl, defaultPolicies())
	ctx := authedCtx(42)

	mockPatterns.EXPECT().Delete(ctx, int64(9)).Return(nil)

	require.NoError(t, svc.DeletePattern(ctx, 9))
}

func TestDeletePattern_NoSessionIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPatternSvc(t, ctrl, defaultPolicies())

	require.NoError(t, svc.DeletePattern(context.Background(), 9))
}
