package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for exercisesRepo: " + err.Error())
	}
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id int) (*entity.Exercise, error) {
	var ex entity.Exercise
	row := pick(ctx, er.conn).QueryRow(ctx, `SELECT exercise_id, name, description, category FROM exercises WHERE exercise_id = $1;`, id)
	if err := row.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", errorvalues.ErrExerciseNotFound, id)
		}
		return nil, dbError(ctx, "getting exercise by id error", err)
	}
	return &ex, nil
}

func (er *ExercisesRepository) List(ctx context.Context) ([]entity.Exercise, error) {
	rows, err := pick(ctx, er.conn).Query(ctx, `SELECT exercise_id, name, description, category FROM exercises ORDER BY exercise_id;`)
	if err != nil {
		return nil, dbError(ctx, "listing exercises error", err)
	}
	defer rows.Close()
	exercises := make([]entity.Exercise, 0)
	for rows.Next() {
		var ex entity.Exercise
		if err = rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Category); err != nil {
			return nil, dbError(ctx, "unmarshalling exercise error", err)
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, dbError(ctx, "unexpected error after scanning", err)
	}
	return exercises, nil
}

// CachedExercisesRepository keeps catalog entries in an in-memory cache.
// The catalog is read-only, so entries only expire by TTL.
type CachedExercisesRepository struct {
	repo  ExercisesRepositoryI
	cache *freecache.Cache
	ttl   int
}

func NewCachedExercisesRepo(repo ExercisesRepositoryI, sizeBytes int, ttl time.Duration) *CachedExercisesRepository {
	return &CachedExercisesRepository{
		repo:  repo,
		cache: freecache.NewCache(sizeBytes),
		ttl:   int(ttl.Seconds()),
	}
}

func exerciseKey(id int) []byte {
	return []byte(fmt.Sprintf("exercise::%d", id))
}

func (c *CachedExercisesRepository) GetByID(ctx context.Context, id int) (*entity.Exercise, error) {
	key := exerciseKey(id)
	if raw, err := c.cache.Get(key); err == nil {
		var ex entity.Exercise
		if err = sonic.Unmarshal(raw, &ex); err == nil {
			return &ex, nil
		}
		slog.Warn("corrupted exercise cache entry", slog.Int("exercise_id", id), slog.String("error", err.Error()))
		c.cache.Del(key)
	}
	ex, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ex)
	return ex, nil
}

// List always reads through and warms the per-id entries.
func (c *CachedExercisesRepository) List(ctx context.Context) ([]entity.Exercise, error) {
	exercises, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		c.store(&exercises[i])
	}
	return exercises, nil
}

func (c *CachedExercisesRepository) store(ex *entity.Exercise) {
	raw, err := sonic.Marshal(ex)
	if err != nil {
		return
	}
	if err = c.cache.Set(exerciseKey(ex.ID), raw, c.ttl); err != nil {
		slog.Warn("caching exercise error", slog.Int("exercise_id", ex.ID), slog.String("error", err.Error()))
	}
}
