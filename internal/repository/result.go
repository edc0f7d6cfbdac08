package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"

	maxKeptResults = 100
)

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and puts it on top of the recent results list.
func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LPush(ctx, resultsListKey, result.ID)
		pipe.LTrim(ctx, resultsListKey, 0, maxKeptResults-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.GameResult{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.GameResult{}, fmt.Errorf("failed to get result by ID: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return &entity.GameResult{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListRecent - newest results first. Ids whose record is gone are skipped.
func (that *dbResult) ListRecent(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	if limit <= 0 {
		return []*entity.GameResult{}, nil
	}

	ids, err := that.client.LRange(ctx, resultsListKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(ids))
	for _, id := range ids {
		result, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrResultNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
