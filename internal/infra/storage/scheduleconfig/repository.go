package scheduleconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/CMS-SchedulingService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"doctor_id",
	"day_start_hour",
	"day_end_hour",
	"slot_step_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигураций сетки расписания (только чтение:
// администрирование настроек — ответственность внешнего сервиса)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForDoctor получает конфигурацию с учетом иерархии приоритетов:
// сначала конфигурация конкретного врача, затем общая для клиники.
// Если нет ни одной строки — ErrConfigNotFound (вызывающий код подставляет
// встроенные значения по умолчанию).
func (r *Repository) GetForDoctor(ctx context.Context, doctorID int64) (*domain.DoctorScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("schedule_configs").
		Where(squirrel.Or{
			squirrel.Eq{"doctor_id": doctorID},
			squirrel.Eq{"doctor_id": nil},
		}).
		// Конфигурация врача приоритетнее общей (NULLS LAST)
		OrderBy("doctor_id NULLS LAST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDoctor - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.DoctorScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.DoctorID,
		&cfg.DayStartHour,
		&cfg.DayEndHour,
		&cfg.SlotStepMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDoctor - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
