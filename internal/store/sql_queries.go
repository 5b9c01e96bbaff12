package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel builder configured for PostgreSQL ($N)
// placeholders. Dynamic SELECTs (optional filters, ownership joins) are
// built through it; fixed-shape DML stays in plain query constants below.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createDossier = `INSERT INTO dossiers (user_id, name, description)
    VALUES ($1, $2, $3)
    RETURNING dossier_id, user_id, name, description, created_at, updated_at;`

	deleteDossier = `DELETE FROM dossiers
    WHERE dossier_id = $1 AND user_id = $2;`

	createTarget = `INSERT INTO targets (dossier_id, code_name, first_name, last_name, aliases)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING target_id, dossier_id, code_name, first_name, last_name, aliases, created_at;`

	targetByID = `SELECT target_id, dossier_id, code_name, first_name, last_name, aliases, created_at
    FROM targets
    WHERE target_id = $1;`

	targetOwnedBy = `SELECT EXISTS (
        SELECT 1
        FROM targets t
        JOIN dossiers d ON d.dossier_id = t.dossier_id
        WHERE t.target_id = $1 AND d.user_id = $2
    );`

	deleteTarget = `DELETE FROM targets
    WHERE target_id = $1;`

	findPatternByKey = `SELECT pattern_id, pattern_type, pattern_value, matching_targets, match_count,
        confidence_score, metadata, is_anomaly, first_seen, last_seen, notes
    FROM pattern_matches
    WHERE pattern_type = $1 AND pattern_value = $2;`

	insertPattern = `INSERT INTO pattern_matches (pattern_type, pattern_value, matching_targets,
        match_count, confidence_score, metadata, is_anomaly, last_seen)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    RETURNING pattern_id, first_seen, last_seen;`

	updatePatternByKey = `UPDATE pattern_matches
    SET matching_targets = $3,
        match_count = $4,
        confidence_score = $5,
        metadata = $6,
        is_anomaly = $7,
        last_seen = NOW()
    WHERE pattern_type = $1 AND pattern_value = $2;`

	deletePattern = `DELETE FROM pattern_matches
    WHERE pattern_id = $1;`

	eventExists = `SELECT EXISTS (
        SELECT 1
        FROM timeline_events
        WHERE target_id = $1 AND source_table = $2 AND source_id = $3 AND event_date = $4
    );`

	insertEvent = `INSERT INTO timeline_events (target_id, event_type, event_date, title,
        description, source_table, source_id, metadata, importance)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING event_id, created_at;`

	deleteEventsByTarget = `DELETE FROM timeline_events
    WHERE target_id = $1;`

	deleteEvent = `DELETE FROM timeline_events te
    USING targets t
    JOIN dossiers d ON d.dossier_id = t.dossier_id
    WHERE te.event_id = $1
      AND te.target_id = t.target_id
      AND d.user_id = $2;`
)

// Insert statements for the intelligence record tables. All RETURNING
// clauses echo the server-assigned id and created_at.
const (
	insertSocialMedia = `INSERT INTO social_media (target_id, platform, username, profile_url, last_activity)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	insertCredential = `INSERT INTO credentials (target_id, email, password_hash, source, breach_date)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`

	insertNetworkData = `INSERT INTO network_data (target_id, ip_address, hostname, isp, first_seen, last_seen)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at;`

	insertAddress = `INSERT INTO addresses (target_id, street, city, country, verified, last_seen)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at;`

	insertEmployment = `INSERT INTO employment (target_id, company, position, start_date, end_date, is_current, verified)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at;`

	insertMediaFile = `INSERT INTO media_files (target_id, file_name, media_type, captured_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, created_at;`

	insertPhoneNumber = `INSERT INTO phone_numbers (target_id, number, carrier, verified, last_seen)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at;`
)

// Per-table column lists used by the squirrel builders. Order matters: the
// repositories scan rows positionally against these lists.
var (
	socialMediaColumns = []string{"id", "target_id", "platform", "username", "profile_url", "last_activity", "created_at"}
	credentialColumns  = []string{"id", "target_id", "email", "password_hash", "source", "breach_date", "created_at"}
	networkDataColumns = []string{"id", "target_id", "ip_address", "hostname", "isp", "first_seen", "last_seen", "created_at"}
	addressColumns     = []string{"id", "target_id", "street", "city", "country", "verified", "last_seen", "created_at"}
	employmentColumns  = []string{"id", "target_id", "company", "position", "start_date", "end_date", "is_current", "verified", "created_at"}
	mediaFileColumns   = []string{"id", "target_id", "file_name", "media_type", "captured_date", "created_at"}
	phoneNumberColumns = []string{"id", "target_id", "number", "carrier", "verified", "last_seen", "created_at"}

	patternColumns = []string{"pattern_id", "pattern_type", "pattern_value", "matching_targets", "match_count",
		"confidence_score", "metadata", "is_anomaly", "first_seen", "last_seen", "notes"}
	eventColumns = []string{"event_id", "target_id", "event_type", "event_date", "title", "description",
		"source_table", "source_id", "metadata", "importance", "created_at"}
	dossierColumns = []string{"dossier_id", "user_id", "name", "description", "created_at", "updated_at"}
	targetColumns  = []string{"target_id", "dossier_id", "code_name", "first_name", "last_name", "aliases", "created_at"}
)

// buildIntelByOwnerQuery selects every row of one intelligence record table
// that is reachable from dossiers owned by the given analyst, by joining
// through targets and dossiers. This is the authorization scope used by the
// pattern detectors.
func buildIntelByOwnerQuery(table string, columns []string, userID int64) (string, []any, error) {
	prefixed := make([]string, len(columns))
	for i, c := range columns {
		prefixed[i] = "r." + c
	}

	return psql.Select(prefixed...).
		From(table + " r").
		Join("targets t ON t.target_id = r.target_id").
		Join("dossiers d ON d.dossier_id = t.dossier_id").
		Where(sq.Eq{"d.user_id": userID}).
		OrderBy("r.id").
		ToSql()
}

// buildIntelByTargetQuery selects every row of one intelligence record table
// belonging to a single target, in insertion order.
func buildIntelByTargetQuery(table string, columns []string, targetID int64) (string, []any, error) {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"target_id": targetID}).
		OrderBy("id").
		ToSql()
}

// buildPatternListQuery selects pattern matches ordered by confidence
// descending. An empty patternType returns all types; anomaliesOnly narrows
// the result to rows with is_anomaly set.
func buildPatternListQuery(patternType string, anomaliesOnly bool) (string, []any, error) {
	builder := psql.Select(patternColumns...).
		From("pattern_matches")

	if patternType != "" {
		builder = builder.Where(sq.Eq{"pattern_type": patternType})
	}
	if anomaliesOnly {
		builder = builder.Where(sq.Eq{"is_anomaly": true})
	}

	return builder.
		OrderBy("confidence_score DESC", "match_count DESC", "pattern_id").
		ToSql()
}

// buildEventsByTargetQuery selects a target's timeline ordered by event date
// descending (most recent first).
func buildEventsByTargetQuery(targetID int64) (string, []any, error) {
	return psql.Select(eventColumns...).
		From("timeline_events").
		Where(sq.Eq{"target_id": targetID}).
		OrderBy("event_date DESC", "event_id DESC").
		ToSql()
}

// buildDossiersByOwnerQuery selects all dossiers owned by the analyst, most
// recently created first.
func buildDossiersByOwnerQuery(userID int64) (string, []any, error) {
	return psql.Select(dossierColumns...).
		From("dossiers").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildDossierByIDQuery selects one dossier, scoped to its owner.
func buildDossierByIDQuery(dossierID, userID int64) (string, []any, error) {
	return psql.Select(dossierColumns...).
		From("dossiers").
		Where(sq.Eq{"dossier_id": dossierID, "user_id": userID}).
		ToSql()
}

// buildTargetsByDossierQuery selects all targets in a dossier in creation order.
func buildTargetsByDossierQuery(dossierID int64) (string, []any, error) {
	return psql.Select(targetColumns...).
		From("targets").
		Where(sq.Eq{"dossier_id": dossierID}).
		OrderBy("target_id").
		ToSql()
}

// intelTables is the closed set of intelligence record tables the generic
// delete accepts. Guarding the set here keeps table names out of reach of
// request input.
var intelTables = map[string]struct{}{
	"social_media":  {},
	"credentials":   {},
	"network_data":  {},
	"addresses":     {},
	"employment":    {},
	"media_files":   {},
	"phone_numbers": {},
}

// buildDeleteIntelRecordQuery builds a DELETE for one row of a named intel
// table, scoped to the owning target so a record ID from another target is
// never reachable. Returns [ErrUnknownRecordKind] when the table is outside
// the known set.
func buildDeleteIntelRecordQuery(table string, targetID, recordID int64) (string, []any, error) {
	if _, ok := intelTables[table]; !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownRecordKind, table)
	}

	return psql.Delete(table).
		Where(sq.Eq{"id": recordID, "target_id": targetID}).
		ToSql()
}
