package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var serverPosterColumns = []string{
	"poster_id",
	"party_id",
	"user_id",
	"lat",
	"lng",
	"created_at",
	"updated_at",
	"removed",
	"removed_at",
	"removed_by",
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(user.TableName()).
		Columns("login", "name", "password_hash", "party_id").
		Values(user.Login, user.Name, user.Password, user.PartyID).
		Suffix("RETURNING user_id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByLoginQuery(login string) (string, []any, error) {
	query, args, err := psql.
		Select("u.user_id", "u.login", "u.name", "u.password_hash", "u.party_id", "p.name", "u.created_at").
		From(models.User{}.TableName() + " u").
		Join(models.Party{}.TableName() + " p ON p.party_id = u.party_id").
		Where(sq.Eq{"u.login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePosterQuery(poster models.ServerPoster) (string, []any, error) {
	query, args, err := psql.
		Insert("posters").
		Columns("party_id", "user_id", "lat", "lng").
		Values(poster.PartyID, poster.UserID, poster.Location.Lat, poster.Location.Lng).
		Suffix("RETURNING poster_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildNearbyPostersQuery selects removal candidates inside box and locks
// them until the surrounding transaction ends.
func buildNearbyPostersQuery(partyID int64, box utils.BoundingBox) (string, []any, error) {
	query, args, err := psql.
		Select("poster_id", "lat", "lng").
		From("posters").
		Where(sq.Eq{"party_id": partyID}).
		Where("NOT removed").
		Where(sq.GtOrEq{"lat": box.MinLat}).
		Where(sq.LtOrEq{"lat": box.MaxLat}).
		Where(sq.GtOrEq{"lng": box.MinLng}).
		Where(sq.LtOrEq{"lng": box.MaxLng}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildMarkPosterRemovedQuery(posterID, userID int64) (string, []any, error) {
	query, args, err := psql.
		Update("posters").
		Set("removed", true).
		Set("removed_at", sq.Expr("NOW()")).
		Set("removed_by", userID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"poster_id": posterID}).
		Where("NOT removed").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatedSinceQuery(partyID int64, since time.Time) (string, []any, error) {
	query, args, err := psql.
		Select(serverPosterColumns...).
		From("posters").
		Where(sq.Eq{"party_id": partyID}).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at", "poster_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
