package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"todoapi/config"
	"todoapi/infras/otel"
	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/internal/domains/todo/repository"
	"todoapi/shared"
	"todoapi/shared/cache"
	"todoapi/shared/constant"
	gDto "todoapi/shared/dto"
	"todoapi/shared/failure"
	gModel "todoapi/shared/model"
	"todoapi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTodo     = "todo:get"
	cacheListTodo    = "todo:list"
	cacheVersionTodo = "todo:version"
)

// Reads only fill the cache while the generation they observed before
// loading is current; every mutation bumps it after committing.
var listVersionKey = shared.BuildCacheKey(cacheVersionTodo, "list")

type Todo interface {
	ListAll(ctx context.Context) (dto.TodoResponses, error)
	GetByID(ctx context.Context, id int64) (dto.TodoResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

// New builds the service and seeds the store with a single default item when
// it is empty. The check runs on every construction.
func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) (Todo, error) {
	svc := &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}

	if err := svc.seed(context.Background()); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *serviceImpl) seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos for seeding")

		return fmt.Errorf("failed to count todos: %w", err)
	}

	if total > 0 {
		return nil
	}

	now := timezone.Now()

	seeded, err := s.repo.Insert(ctx, model.TodoItem{
		Name:       model.SeedName,
		IsComplete: false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to seed todo")

		return fmt.Errorf("failed to seed todo: %w", err)
	}

	s.invalidateList(ctx)

	log.Info().Int64("id", seeded.ID).Str("name", seeded.Name).Msg("store was empty, seeded default todo")

	return nil
}

func (s *serviceImpl) ListAll(ctx context.Context) (res dto.TodoResponses, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.cacheEnabled() {
		if err = s.cache.Get(ctx, cacheListTodo, &res); err == nil && res != nil {
			log.Debug().Str("cacheKey", cacheListTodo).Msg("cache hit for todos")

			return res, nil
		}
	}

	version, cacheable := s.version(ctx, listVersionKey)

	params := gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models)

	if cacheable {
		s.save(ctx, cacheListTodo, res, listVersionKey, version)
	}

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	cacheKey := itemCacheKey(id)

	if s.cacheEnabled() {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil && res.ID == id {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for todo")

			return res, nil
		}
	}

	versionKey := itemVersionKey(id)
	version, cacheable := s.version(ctx, versionKey)

	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return dto.TodoResponse{}, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	if cacheable {
		s.save(ctx, cacheKey, res, versionKey, version)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.invalidateList(ctx)

	res.FromModel(created)
	scope.SetAttribute("todo.id", created.ID)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	updated, err := s.repo.Update(ctx, req.ToFields(), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if updated.ID == 0 {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	s.invalidateItem(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("todo.id", id)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound("todo not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) cacheEnabled() bool {
	return s.cfg.Cache.TTL > 0
}

// version reads the generation at key before a load. Caching is skipped for
// the load when the generation cannot be read.
func (s *serviceImpl) version(ctx context.Context, key string) (int64, bool) {
	if !s.cacheEnabled() {
		return 0, false
	}

	version, err := s.cache.Version(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to read todo cache version")

		return 0, false
	}

	return version, true
}

func (s *serviceImpl) save(ctx context.Context, key string, value any, versionKey string, version int64) {
	if err := s.cache.SaveIfVersion(ctx, key, value, s.cfg.Cache.TTL, versionKey, version); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save todo cache")
	}
}

func (s *serviceImpl) invalidateItem(ctx context.Context, id int64) {
	if !s.cacheEnabled() {
		return
	}

	if err := s.cache.Bump(ctx, itemVersionKey(id)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to bump todo cache version")
	}

	if err := s.cache.Delete(ctx, itemCacheKey(id)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to invalidate todo cache")
	}

	s.invalidateList(ctx)
}

func (s *serviceImpl) invalidateList(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}

	if err := s.cache.Bump(ctx, listVersionKey); err != nil {
		log.Error().Err(err).Msg("failed to bump todo list cache version")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheListTodo)
}

func itemCacheKey(id int64) string {
	return shared.BuildCacheKey(cacheGetTodo, strconv.FormatInt(id, 10))
}

func itemVersionKey(id int64) string {
	return shared.BuildCacheKey(cacheVersionTodo, strconv.FormatInt(id, 10))
}
