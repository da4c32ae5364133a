package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/matchrimoney/internal/models"
)

const userColumns = `user_id, email, password_hash, couple_name, wedding_date, location, theme, budget,
	vendor_categories, email_verified, profile_completed, profile_visible, allow_messages,
	bio, profile_picture, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs returns the users with the given ids keyed by id.
func (r *UserReadRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.UserDB, error) {
	result := make(map[uuid.UUID]*models.UserDB, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE user_id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var users []models.UserDB
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)
	logQuery(query, args, len(users), err)
	if err != nil {
		return nil, err
	}

	for i := range users {
		result[users[i].UserID] = &users[i]
	}
	return result, nil
}

// ListMarketplace returns every visible, completed profile other than
// excludeID that matches the filter. Sorting and paging are left to the caller.
func (r *UserReadRepository) ListMarketplace(ctx context.Context, excludeID uuid.UUID, f models.MarketplaceFilter) ([]models.UserDB, error) {
	where, args := marketplaceWhere(excludeID, f)
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` ORDER BY wedding_date, user_id`

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, args...)
	logQuery(query, args, len(users), err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// PageMarketplace returns one page of matching profiles ordered by wedding
// date or budget, together with the total number of matches.
func (r *UserReadRepository) PageMarketplace(ctx context.Context, excludeID uuid.UUID, f models.MarketplaceFilter) ([]models.UserDB, int64, error) {
	where, args := marketplaceWhere(excludeID, f)
	ext := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*) FROM users WHERE ` + where
	var total int64
	err := sqlx.GetContext(ctx, ext, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	orderBy := "wedding_date, user_id"
	if f.SortBy == models.SortByBudget {
		orderBy = "budget, wedding_date, user_id"
	}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		userColumns, where, orderBy, len(args)+1, len(args)+2)
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	users := []models.UserDB{}
	err = sqlx.SelectContext(ctx, ext, &users, query, args...)
	logQuery(query, args, len(users), err)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// marketplaceWhere builds the WHERE clause shared by the marketplace queries.
// Categories are expected lower-cased and match any profile tag ignoring case.
func marketplaceWhere(excludeID uuid.UUID, f models.MarketplaceFilter) (string, []any) {
	conds := []string{"profile_visible", "profile_completed", "user_id <> $1"}
	args := []any{excludeID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Location != "" {
		add(`location ILIKE $%d ESCAPE '\'`, containsPattern(f.Location))
	}
	if f.Theme != "" {
		add(`theme ILIKE $%d ESCAPE '\'`, containsPattern(f.Theme))
	}
	if f.MinBudget > 0 {
		add("budget >= $%d", f.MinBudget)
	}
	if f.MaxBudget > 0 {
		add("budget <= $%d", f.MaxBudget)
	}
	if f.DateFrom != nil {
		add("wedding_date >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("wedding_date <= $%d", *f.DateTo)
	}
	if len(f.Categories) > 0 {
		add(`EXISTS (SELECT 1 FROM jsonb_array_elements_text(vendor_categories) AS tag
			WHERE LOWER(tag) IN (SELECT jsonb_array_elements_text($%d::jsonb)))`, models.StringList(f.Categories))
	}
	return strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new unverified user. It returns ErrDuplicate when the
// email is already registered.
func (r *UserWriteRepository) Create(ctx context.Context, email, passwordHash, coupleName string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, email, password_hash, couple_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{uuid.New(), email, passwordHash, coupleName}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, []any{args[0], email, coupleName}, user.UserID, err)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the editable profile fields and returns the
// updated user, or nil when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, p models.ProfileUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET couple_name = $2, wedding_date = $3, location = $4, theme = $5, budget = $6,
		    vendor_categories = $7, bio = $8, profile_visible = $9, allow_messages = $10,
		    profile_completed = $11, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns
	args := []any{
		userID, p.CoupleName, p.WeddingDate, p.Location, p.Theme, p.Budget,
		models.StringList(p.VendorCategories), p.Bio, p.ProfileVisible, p.AllowMessages,
		p.Completed(),
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.UserID, err)

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}
	return &user, nil
}

// SetEmailVerified marks the user with the given email as verified.
func (r *UserWriteRepository) SetEmailVerified(ctx context.Context, email string) error {
	query := `UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE email = $1`
	return r.exec(ctx, query, email)
}

// UpdatePassword stores a new password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, passwordHash)
}

// UpdateProfilePicture sets or clears (nil) the profile picture reference.
func (r *UserWriteRepository) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, picture *string) error {
	query := `UPDATE users SET profile_picture = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, picture)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	// Only the key is logged; the remaining args may hold secrets.
	logQuery(query, args[:1], rowsAffected, err)
	return err
}
