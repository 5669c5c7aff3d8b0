package dealership

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TestDriveService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TestDriveService/pkg/types"
)

type DBExecutor = dbmetrics.DBExecutor

const table = "dealership_working_hours"

// Repository weekly working hours of the dealership
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours returns the stored entries in Monday..Sunday order.
// Times of closed days are returned as empty strings.
func (r *Repository) GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "is_open", "open_time", "close_time").
		From(table).
		OrderBy("day_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.WorkingHoursEntry, 0, domain.DaysInWeek)
	for rows.Next() {
		var (
			entry     domain.WorkingHoursEntry
			openTime  types.TimeString
			closeTime types.TimeString
		)

		if err := rows.Scan(&entry.DayOfWeek, &entry.IsOpen, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
		}

		entry.OpenTime = openTime.String()
		entry.CloseTime = closeTime.String()
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ReplaceWorkingHours deletes all entries and inserts the given ones.
// Must run inside a transaction for the replacement to be atomic.
func (r *Repository) ReplaceWorkingHours(ctx context.Context, entries []domain.WorkingHoursEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(table).
		Columns("day_of_week", "day_index", "is_open", "open_time", "close_time")

	for _, e := range entries {
		openTime, closeTime, err := entryTimes(e)
		if err != nil {
			return fmt.Errorf("%w: ReplaceWorkingHours - %s: %v", ErrBuildQuery, e.DayOfWeek, err)
		}
		insertBuilder = insertBuilder.Values(string(e.DayOfWeek), dayIndex(e.DayOfWeek), e.IsOpen, openTime, closeTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// entryTimes converts "HH:MM" to TIME values, empty strings become NULL
func entryTimes(e domain.WorkingHoursEntry) (types.TimeString, types.TimeString, error) {
	var openTime, closeTime types.TimeString
	var err error

	if e.OpenTime != "" {
		if openTime, err = types.NewTimeStringFromString(e.OpenTime); err != nil {
			return openTime, closeTime, err
		}
	}
	if e.CloseTime != "" {
		if closeTime, err = types.NewTimeStringFromString(e.CloseTime); err != nil {
			return openTime, closeTime, err
		}
	}

	return openTime, closeTime, nil
}

// dayIndex 1 for Monday through 7 for Sunday
func dayIndex(d domain.DayOfWeek) int {
	for i, day := range domain.AllDays {
		if d.Matches(day) {
			return i + 1
		}
	}
	return 0
}
