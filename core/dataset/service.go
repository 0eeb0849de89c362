package dataset

import (
	"context"

	"github.com/google/uuid"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Service struct {
	client   Client
	uploader *Uploader
	logger   log.Logger

	newCorrelationID func() string

	datasetOpCounter metric.Int64Counter
}

type ServiceDeps struct {
	Client Client
	Stager *Stager
	Logger log.Logger

	// CorrelationIDFunc generates the ID shared by the requests of one
	// publish. Defaults to random UUIDs.
	CorrelationIDFunc func() string

	// MeterProvider defaults to the global provider.
	MeterProvider metric.MeterProvider
}

func NewService(deps ServiceDeps) *Service {
	meterProvider := deps.MeterProvider
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}
	datasetOpCounter, err := meterProvider.Meter("github.com/heldtogether/traintrack/core/dataset").
		Int64Counter("traintrack.dataset.operation")
	if err != nil {
		otel.Handle(err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}
	newCorrelationID := deps.CorrelationIDFunc
	if newCorrelationID == nil {
		newCorrelationID = uuid.NewString
	}

	return &Service{
		client:   deps.Client,
		uploader: NewUploader(deps.Client, deps.Stager, logger),
		logger:   logger,

		newCorrelationID: newCorrelationID,

		datasetOpCounter: datasetOpCounter,
	}
}

type publishOptions struct {
	force bool
}

type PublishOption func(*publishOptions)

// WithForce allows publishing a draft of an already persisted dataset.
func WithForce(force bool) PublishOption {
	return func(o *publishOptions) {
		o.force = force
	}
}

type createRequest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Parent      *string  `json:"parent"`
	Artefacts   []string `json:"artefacts"`
}

// Publish uploads the draft's artefacts and then creates the dataset record
// referencing them. The record is only created once every upload has
// succeeded. Uploads are not cleaned up if a later step fails.
func (s *Service) Publish(ctx context.Context, draft *Draft, opts ...PublishOption) (ds Dataset, err error) {
	defer func() {
		s.instrumentDatasetOp(ctx, "Publish", err)
	}()

	if draft == nil {
		return Dataset{}, ErrNilDraft
	}

	var o publishOptions
	for _, opt := range opts {
		opt(&o)
	}
	if draft.ID != "" && !o.force {
		return Dataset{}, ImmutableDatasetError{ID: draft.ID}
	}
	if err := draft.Validate(); err != nil {
		return Dataset{}, err
	}

	correlationID := s.newCorrelationID()
	ctx = WithCorrelationID(ctx, correlationID)

	artefacts := draft.Artefacts()
	ids, err := s.uploader.UploadAll(ctx, artefacts)
	if err != nil {
		s.warnOrphans(correlationID, draft, ids, err)
		return Dataset{}, err
	}

	var parent *string
	if draft.Parent != nil {
		parent = stringPtr(*draft.Parent)
	}
	req := createRequest{
		Name:        draft.Name,
		Version:     draft.Version,
		Description: draft.Description,
		Parent:      parent,
		Artefacts:   ids,
	}

	var created Dataset
	if err := s.client.PostJSON(ctx, datasetsPath, req, &created); err != nil {
		s.warnOrphans(correlationID, draft, ids, err)
		return Dataset{}, err
	}

	s.logger.Info("published dataset",
		"id", created.ID,
		"name", created.Name,
		"version", created.Version,
		"artefacts", len(ids),
		"correlation_id", correlationID,
	)
	return created, nil
}

// List fetches every dataset visible to the client.
func (s *Service) List(ctx context.Context) (cat Catalog, err error) {
	defer func() {
		s.instrumentDatasetOp(ctx, "List", err)
	}()

	var items []Dataset
	if err := s.client.Get(ctx, datasetsPath, &items); err != nil {
		return Catalog{}, err
	}
	return NewCatalog(items), nil
}

// Get returns the dataset with the given ID from a fresh listing.
func (s *Service) Get(ctx context.Context, id string) (Dataset, error) {
	if id == "" {
		return Dataset{}, ErrEmptyID
	}

	cat, err := s.List(ctx)
	if err != nil {
		return Dataset{}, err
	}
	ds, ok := cat.FindByID(id)
	if !ok {
		return Dataset{}, NotFoundError{ID: id}
	}
	return ds, nil
}

func (s *Service) warnOrphans(correlationID string, draft *Draft, ids []string, err error) {
	if len(ids) == 0 {
		return
	}
	s.logger.Warn("publish failed after uploading artefacts, uploads are left unreferenced",
		"name", draft.Name,
		"version", draft.Version,
		"upload_ids", ids,
		"correlation_id", correlationID,
		"error", err,
	)
}

func (s *Service) instrumentDatasetOp(ctx context.Context, op string, err error) {
	if s.datasetOpCounter == nil {
		return
	}
	s.datasetOpCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("traintrack.dataset_operation", op),
		attribute.Bool("operation.success", err == nil),
	))
}
