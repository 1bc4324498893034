// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/validation"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"
	"tracker/internal/usecase"

	"go.uber.org/fx"
)

// RecordErrors are the errors a collection reports to its callers.
type RecordErrors struct {
	NotFound       error
	NotUpdated     error
	NotDeleted     error
	CreationFailed error
}

var genericErrors = RecordErrors{
	NotFound:       domainerrors.ErrNotFound,
	NotUpdated:     domainerrors.ErrNotUpdated,
	NotDeleted:     domainerrors.ErrNotFound,
	CreationFailed: domainerrors.ErrCreationFailed,
}

// RecordServiceParams holds the dependencies every record service shares, injected by Fx.
type RecordServiceParams struct {
	fx.In

	Store     repository.DocumentStore
	Validator *validation.Validator
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// recordService implements create/read/replace/delete for one collection.
// build turns validated input into the stored shape with defaults filled.
type recordService[In any, Out any] struct {
	collection string
	build      func(*In) *Out
	errs       RecordErrors

	store     repository.DocumentStore
	validator *validation.Validator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func newRecordService[In any, Out any](params RecordServiceParams, collection string, build func(*In) *Out, errs RecordErrors) *recordService[In, Out] {
	return &recordService[In, Out]{
		collection: collection,
		build:      build,
		errs:       errs,
		store:      params.Store,
		validator:  params.Validator,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// NewActivityService is the constructor for the activity catalogue service.
func NewActivityService(params RecordServiceParams) usecase.ActivityUsecase {
	return newRecordService(params, entity.ActivityCollection, entity.NewActivity, genericErrors)
}

// NewLearnerService is the constructor for the learner profile service.
func NewLearnerService(params RecordServiceParams) usecase.LearnerUsecase {
	return newRecordService(params, entity.LearnerCollection, entity.NewLearner, genericErrors)
}

// NewEngagementService is the constructor for the engagement service.
func NewEngagementService(params RecordServiceParams) usecase.EngagementUsecase {
	return newRecordService(params, entity.EngagementCollection, entity.NewEngagement, genericErrors)
}

func (s *recordService[In, Out]) coll() repository.Collection {
	return s.store.Collection(s.collection)
}

// Create validates input, inserts it and returns the document as stored.
// An insert that cannot be read back is reported as a creation failure; the
// write itself is not undone.
func (s *recordService[In, Out]) Create(ctx context.Context, input *In) (*Out, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	id, err := s.coll().InsertOne(ctx, s.build(input))
	if err != nil {
		return nil, errors.Wrapf(err, "insert into %s", s.collection)
	}

	out := new(Out)
	if err := s.coll().FindOne(ctx, repository.ByIdentity(entity.ByID(id)), out); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			logger.Error("Inserted document could not be read back",
				slog.String("collection", s.collection),
				slog.String("id", id.Hex()),
			)

			return nil, s.errs.CreationFailed
		}

		return nil, errors.Wrapf(err, "read back %s", s.collection)
	}

	s.metrics.IncDocumentsCreated(s.collection)
	logger.Debug("Document created", slog.String("collection", s.collection), slog.String("id", id.Hex()))

	return out, nil
}

func (s *recordService[In, Out]) Get(ctx context.Context, id entity.ID) (*Out, error) {
	return s.get(ctx, entity.ByID(id))
}

func (s *recordService[In, Out]) get(ctx context.Context, identity entity.Identity) (*Out, error) {
	out := new(Out)
	if err := s.coll().FindOne(ctx, repository.ByIdentity(identity), out); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return nil, s.errs.NotFound
		}

		return nil, errors.Wrapf(err, "find in %s", s.collection)
	}

	return out, nil
}

func (s *recordService[In, Out]) Update(ctx context.Context, id entity.ID, input *In) error {
	return s.update(ctx, entity.ByID(id), input)
}

// update replaces the whole document. Matching counts as success even when
// the content is unchanged.
func (s *recordService[In, Out]) update(ctx context.Context, identity entity.Identity, input *In) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	matched, err := s.coll().ReplaceOne(ctx, repository.ByIdentity(identity), s.build(input))
	if err != nil {
		return errors.Wrapf(err, "replace in %s", s.collection)
	}
	if matched == 0 {
		return s.errs.NotUpdated
	}

	return nil
}

func (s *recordService[In, Out]) Delete(ctx context.Context, id entity.ID) error {
	return s.delete(ctx, entity.ByID(id))
}

func (s *recordService[In, Out]) delete(ctx context.Context, identity entity.Identity) error {
	deleted, err := s.coll().DeleteOne(ctx, repository.ByIdentity(identity))
	if err != nil {
		return errors.Wrapf(err, "delete from %s", s.collection)
	}
	if deleted == 0 {
		return s.errs.NotDeleted
	}

	return nil
}
