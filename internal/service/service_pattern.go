package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/mgavrilov/blackraven/internal/config"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
)

// PatternPolicy holds the cardinality thresholds and confidence constants of
// one detector. The confidence formula is linear in the distinct target
// count and capped at 100.
type PatternPolicy struct {
	// MinTargets is the exclusive lower bound: a group is persisted only
	// when it spans more than MinTargets distinct targets.
	MinTargets int

	// AnomalyAbove flags the pattern anomalous when the target count
	// exceeds it. Zero or negative disables anomaly flagging entirely.
	AnomalyAbove int

	ConfidenceBase int
	ConfidenceStep int
}

// Confidence returns the 0-100 score for a group spanning n targets.
func (p PatternPolicy) Confidence(n int) int {
	return min(100, p.ConfidenceBase+p.ConfidenceStep*n)
}

// Qualifies reports whether a group spanning n targets crosses the
// persistence threshold.
func (p PatternPolicy) Qualifies(n int) bool {
	return n > p.MinTargets
}

// Anomalous reports whether a group spanning n targets should be flagged.
func (p PatternPolicy) Anomalous(n int) bool {
	return p.AnomalyAbove > 0 && n > p.AnomalyAbove
}

// PatternPolicies is the full policy table of the detection engine, one
// policy per correlation signal.
type PatternPolicies struct {
	Username    PatternPolicy
	EmailExact  PatternPolicy
	EmailDomain PatternPolicy
	Password    PatternPolicy
	IPRange     PatternPolicy

	// ValidateIPs enables octet-range validation in the subnet detector.
	// Off by default: any 4-part dotted value is grouped syntactically.
	ValidateIPs bool
}

// DefaultPatternPolicies returns the standard policy table, with the IP
// validation toggle taken from configuration.
func DefaultPatternPolicies(cfg config.Patterns) PatternPolicies {
	return PatternPolicies{
		Username:    PatternPolicy{MinTargets: 1, AnomalyAbove: 3, ConfidenceBase: 40, ConfidenceStep: 10},
		EmailExact:  PatternPolicy{MinTargets: 1, AnomalyAbove: 2, ConfidenceBase: 50, ConfidenceStep: 10},
		EmailDomain: PatternPolicy{MinTargets: 3, AnomalyAbove: 0, ConfidenceBase: 30, ConfidenceStep: 5},
		Password:    PatternPolicy{MinTargets: 1, AnomalyAbove: 2, ConfidenceBase: 60, ConfidenceStep: 10},
		IPRange:     PatternPolicy{MinTargets: 2, AnomalyAbove: 5, ConfidenceBase: 40, ConfidenceStep: 8},
		ValidateIPs: cfg.ValidateIPs,
	}
}

// patternService is the concrete implementation of PatternService.
//
// Each detector is one linear pass: fetch the owner-scoped records, build a
// local multimap from normalized key to the set of target IDs, filter by the
// policy threshold, and upsert one pattern row per surviving group. The
// detectors run sequentially and share no state between calls.
type patternService struct {
	intel    store.IntelRepository
	patterns store.PatternRepository
	policies PatternPolicies
	logger   *logger.Logger
}

// NewPatternService constructs a PatternService over the intel and pattern
// repositories with the given policy table.
func NewPatternService(repos *store.Repositories, policies PatternPolicies, logger *logger.Logger) PatternService {
	return &patternService{
		intel:    repos.IntelRepository,
		patterns: repos.PatternRepository,
		policies: policies,
		logger:   logger,
	}
}

// DetectUsernamePatterns correlates social media accounts across targets by
// lowercased username. A username attached to more than one distinct target
// produces a username_reuse pattern whose metadata lists the matching
// platform records.
func (s *patternService) DetectUsernamePatterns(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, nil
	}

	accounts, err := s.intel.SocialMediaByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*patternService.DetectUsernamePatterns").Msg("social media fetch failed, detector skipped")
		return 0, nil
	}

	byUsername := make(map[string]map[int64]struct{})
	platformsByUsername := make(map[string][]map[string]any)

	for _, account := range accounts {
		username := strings.ToLower(strings.TrimSpace(account.Username))
		if username == "" {
			continue
		}

		if byUsername[username] == nil {
			byUsername[username] = make(map[int64]struct{})
		}
		byUsername[username][account.TargetID] = struct{}{}
		platformsByUsername[username] = append(platformsByUsername[username], map[string]any{
			"platform":  account.Platform,
			"target_id": account.TargetID,
		})
	}

	saved := 0
	for username, targets := range byUsername {
		if !s.policies.Username.Qualifies(len(targets)) {
			continue
		}

		n := len(targets)
		pattern := models.PatternMatch{
			PatternType:     models.PatternUsernameReuse,
			PatternValue:    username,
			MatchingTargets: targetIDs(targets),
			MatchCount:      n,
			ConfidenceScore: s.policies.Username.Confidence(n),
			Metadata:        map[string]any{"platforms": platformsByUsername[username]},
			IsAnomaly:       s.policies.Username.Anomalous(n),
		}

		if s.savePattern(ctx, pattern) {
			saved++
		}
	}

	return saved, nil
}

// DetectEmailPatterns correlates credentials two ways: by exact lowercased
// email and, separately, by the domain part after "@". The two groupings can
// both persist a row for overlapping target sets; that is a feature, they
// are distinct match types.
func (s *patternService) DetectEmailPatterns(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, nil
	}

	credentials, err := s.intel.CredentialsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*patternService.DetectEmailPatterns").Msg("credentials fetch failed, detector skipped")
		return 0, nil
	}

	byEmail := make(map[string]map[int64]struct{})
	byDomain := make(map[string]map[int64]struct{})

	for _, cred := range credentials {
		email := strings.ToLower(strings.TrimSpace(cred.Email))
		if email == "" {
			continue
		}

		if byEmail[email] == nil {
			byEmail[email] = make(map[int64]struct{})
		}
		byEmail[email][cred.TargetID] = struct{}{}

		if at := strings.Index(email, "@"); at >= 0 {
			domain := email[at+1:]
			if domain != "" {
				if byDomain[domain] == nil {
					byDomain[domain] = make(map[int64]struct{})
				}
				byDomain[domain][cred.TargetID] = struct{}{}
			}
		}
	}

	saved := 0

	for email, targets := range byEmail {
		n := len(targets)
		if !s.policies.EmailExact.Qualifies(n) {
			continue
		}

		pattern := models.PatternMatch{
			PatternType:     models.PatternEmail,
			PatternValue:    email,
			MatchingTargets: targetIDs(targets),
			MatchCount:      n,
			ConfidenceScore: s.policies.EmailExact.Confidence(n),
			Metadata:        map[string]any{"type": "exact_match"},
			IsAnomaly:       s.policies.EmailExact.Anomalous(n),
		}

		if s.savePattern(ctx, pattern) {
			saved++
		}
	}

	for domain, targets := range byDomain {
		n := len(targets)
		if !s.policies.EmailDomain.Qualifies(n) {
			continue
		}

		pattern := models.PatternMatch{
			PatternType:     models.PatternEmail,
			PatternValue:    "@" + domain,
			MatchingTargets: targetIDs(targets),
			MatchCount:      n,
			ConfidenceScore: s.policies.EmailDomain.Confidence(n),
			Metadata:        map[string]any{"type": "domain_match"},
			IsAnomaly:       s.policies.EmailDomain.Anomalous(n),
		}

		if s.savePattern(ctx, pattern) {
			saved++
		}
	}

	return saved, nil
}

// DetectPasswordPatterns correlates credentials by identical password hash.
// Hashes arrive pre-hashed; plaintext never reaches this service. The stored
// pattern value is a truncated prefix of the hash; the full hash travels in
// the metadata for correlation.
func (s *patternService) DetectPasswordPatterns(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, nil
	}

	credentials, err := s.intel.CredentialsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*patternService.DetectPasswordPatterns").Msg("credentials fetch failed, detector skipped")
		return 0, nil
	}

	byHash := make(map[string]map[int64]struct{})

	for _, cred := range credentials {
		hash := strings.TrimSpace(cred.PasswordHash)
		if hash == "" {
			continue
		}

		if byHash[hash] == nil {
			byHash[hash] = make(map[int64]struct{})
		}
		byHash[hash][cred.TargetID] = struct{}{}
	}

	saved := 0
	for hash, targets := range byHash {
		n := len(targets)
		if !s.policies.Password.Qualifies(n) {
			continue
		}

		pattern := models.PatternMatch{
			PatternType:     models.PatternPassword,
			PatternValue:    truncateHash(hash),
			MatchingTargets: targetIDs(targets),
			MatchCount:      n,
			ConfidenceScore: s.policies.Password.Confidence(n),
			Metadata:        map[string]any{"full_hash": hash},
			IsAnomaly:       s.policies.Password.Anomalous(n),
		}

		if s.savePattern(ctx, pattern) {
			saved++
		}
	}

	return saved, nil
}

// DetectIPRangePatterns correlates network observations by /24 subnet. Only
// dotted values with exactly four parts are considered; everything else is
// skipped silently. Octet range checks apply only when enabled in the policy
// table.
func (s *patternService) DetectIPRangePatterns(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, nil
	}

	observations, err := s.intel.NetworkDataByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*patternService.DetectIPRangePatterns").Msg("network data fetch failed, detector skipped")
		return 0, nil
	}

	bySubnet := make(map[string]map[int64]struct{})

	for _, obs := range observations {
		subnet, ok := utils.DeriveSubnet24(obs.IPAddress, s.policies.ValidateIPs)
		if !ok {
			continue
		}

		if bySubnet[subnet] == nil {
			bySubnet[subnet] = make(map[int64]struct{})
		}
		bySubnet[subnet][obs.TargetID] = struct{}{}
	}

	saved := 0
	for subnet, targets := range bySubnet {
		n := len(targets)
		if !s.policies.IPRange.Qualifies(n) {
			continue
		}

		pattern := models.PatternMatch{
			PatternType:     models.PatternIPRange,
			PatternValue:    subnet,
			MatchingTargets: targetIDs(targets),
			MatchCount:      n,
			ConfidenceScore: s.policies.IPRange.Confidence(n),
			Metadata:        map[string]any{"subnet": subnet},
			IsAnomaly:       s.policies.IPRange.Anomalous(n),
		}

		if s.savePattern(ctx, pattern) {
			saved++
		}
	}

	return saved, nil
}

// RunAllPatternDetection runs the four detectors one after another. They are
// deliberately not concurrent: all four upsert into the same table and the
// read-then-write upsert is only race-free when serialized.
func (s *patternService) RunAllPatternDetection(ctx context.Context) (models.DetectionSummary, error) {
	var summary models.DetectionSummary

	summary.UsernamePatterns, _ = s.DetectUsernamePatterns(ctx)
	summary.EmailPatterns, _ = s.DetectEmailPatterns(ctx)
	summary.PasswordPatterns, _ = s.DetectPasswordPatterns(ctx)
	summary.IPRangePatterns, _ = s.DetectIPRangePatterns(ctx)

	summary.Total = summary.UsernamePatterns + summary.EmailPatterns +
		summary.PasswordPatterns + summary.IPRangePatterns

	return summary, nil
}

// GetPatternMatches returns stored patterns ordered by confidence descending.
// An empty patternType returns every type.
func (s *patternService) GetPatternMatches(ctx context.Context, patternType string) ([]models.PatternMatch, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return []models.PatternMatch{}, nil
	}

	return s.patterns.List(ctx, patternType)
}

// GetAnomalies returns only the patterns whose match count crossed the
// heightened per-type threshold.
func (s *patternService) GetAnomalies(ctx context.Context) ([]models.PatternMatch, error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return []models.PatternMatch{}, nil
	}

	return s.patterns.Anomalies(ctx)
}

// DeletePattern removes one pattern row by ID. Without a session the call is
// a no-op, matching the zero-result contract of the rest of the engine.
func (s *patternService) DeletePattern(ctx context.Context, patternID int64) error {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil
	}

	return s.patterns.Delete(ctx, patternID)
}

// savePattern is the upsert primitive. Rows are keyed (pattern_type,
// pattern_value): an existing row gets its derived fields and last_seen
// overwritten, a new row is inserted with first_seen set by the database.
// Returns false on write failure so callers can continue the batch.
func (s *patternService) savePattern(ctx context.Context, pattern models.PatternMatch) bool {
	log := logger.FromContext(ctx)

	_, err := s.patterns.FindByKey(ctx, pattern.PatternType, pattern.PatternValue)
	switch {
	case err == nil:
		if updateErr := s.patterns.UpdateByKey(ctx, pattern); updateErr != nil {
			log.Err(updateErr).Str("pattern_type", pattern.PatternType).Str("pattern_value", pattern.PatternValue).Msg("pattern update failed")
			return false
		}
		return true

	case errors.Is(err, store.ErrPatternNotFound):
		if _, insertErr := s.patterns.Insert(ctx, pattern); insertErr != nil {
			log.Err(insertErr).Str("pattern_type", pattern.PatternType).Str("pattern_value", pattern.PatternValue).Msg("pattern insert failed")
			return false
		}
		return true

	default:
		log.Err(err).Str("pattern_type", pattern.PatternType).Str("pattern_value", pattern.PatternValue).Msg("pattern lookup failed")
		return false
	}
}

// targetIDs flattens a target set into a sorted slice.
func targetIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// truncateHash shortens a password hash to its 16-character prefix for
// display as a pattern value.
func truncateHash(hash string) string {
	if len(hash) > 16 {
		hash = hash[:16]
	}
	return hash + "..."
}
