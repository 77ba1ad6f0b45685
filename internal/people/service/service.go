// Package service is the single entry point for reading and changing people
// and their owned records. It assigns ids, validates, enforces referential
// integrity, and cascades person deletes across the stores.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"people/internal/audit"
	"people/internal/people/metrics"
	"people/internal/people/models"
	"people/internal/people/store/address"
	"people/internal/people/store/employment"
	"people/internal/people/store/person"
	"people/internal/people/store/relationship"
	"people/pkg/attrs"
	id "people/pkg/domain"
	dErrors "people/pkg/domain-errors"
	"people/pkg/platform/sentinel"
	"people/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PersonStore,AddressStore,EmploymentStore,RelationshipStore,AuditPublisher

type PersonStore interface {
	Create(ctx context.Context, p models.Person) error
	Update(ctx context.Context, p models.Person) error
	Delete(ctx context.Context, personID id.PersonID) (models.Person, error)
	FindByID(ctx context.Context, personID id.PersonID) (models.Person, error)
	List(ctx context.Context) ([]models.Person, error)
	Exists(ctx context.Context, personID id.PersonID) (bool, error)
}

type AddressStore interface {
	Create(ctx context.Context, a models.Address) error
	Update(ctx context.Context, a models.Address) error
	Delete(ctx context.Context, personID id.PersonID, addressID id.AddressID) (models.Address, error)
	FindByID(ctx context.Context, personID id.PersonID, addressID id.AddressID) (models.Address, error)
	ListByPerson(ctx context.Context, personID id.PersonID) ([]models.Address, error)
	Exists(ctx context.Context, personID id.PersonID, addressID id.AddressID) (bool, error)
	ListAll(ctx context.Context) ([]models.Address, error)
	DeleteAllForPerson(ctx context.Context, personID id.PersonID) (int, error)
}

type EmploymentStore interface {
	Create(ctx context.Context, e models.Employment) error
	Update(ctx context.Context, e models.Employment) error
	Delete(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (models.Employment, error)
	FindByID(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (models.Employment, error)
	ListByPerson(ctx context.Context, personID id.PersonID) ([]models.Employment, error)
	Exists(ctx context.Context, personID id.PersonID, employmentID id.EmploymentID) (bool, error)
	ListAll(ctx context.Context) ([]models.Employment, error)
	DeleteAllForPerson(ctx context.Context, personID id.PersonID) (int, error)
}

type RelationshipStore interface {
	Create(ctx context.Context, r models.Relationship) error
	Update(ctx context.Context, r models.Relationship) error
	Delete(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (models.Relationship, error)
	FindByID(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (models.Relationship, error)
	ListByPerson(ctx context.Context, personID id.PersonID) ([]models.Relationship, error)
	Exists(ctx context.Context, personID id.PersonID, relationshipID id.RelationshipID) (bool, error)
	DeleteAllForPerson(ctx context.Context, personID id.PersonID) (int, error)
	DeleteAllRelatedTo(ctx context.Context, personID id.PersonID) (int, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service orchestrates the four stores. It holds no locks of its own; each
// store guarantees atomic single-key mutation and nothing spans stores.
type Service struct {
	people         PersonStore
	addresses      AddressStore
	employments    EmploymentStore
	relationships  RelationshipStore
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	newID          func() string
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// withIDGenerator replaces uuid generation; tests use it to force collisions.
func withIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

func New(people PersonStore, addresses AddressStore, employments EmploymentStore, relationships RelationshipStore, opts ...Option) *Service {
	s := &Service{
		people:        people,
		addresses:     addresses,
		employments:   employments,
		relationships: relationships,
		tracer:        otel.Tracer("people/service"),
		newID:         id.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemory wires the service to fresh in-memory stores.
func NewInMemory(opts ...Option) *Service {
	return New(person.New(), address.New(), employment.New(), relationship.New(), opts...)
}

// rejectProvidedID enforces server-side id assignment.
func rejectProvidedID(value, label string) error {
	if value != "" {
		return dErrors.New(dErrors.CodeConflict, label+" must not be provided")
	}
	return nil
}

func (s *Service) requirePerson(ctx context.Context, personID id.PersonID) error {
	ok, err := s.people.Exists(ctx, personID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up person")
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "person not found")
	}
	return nil
}

// requireRecord turns an Exists probe into NotFound or Internal.
func requireRecord(ok bool, err error, entity string) error {
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up "+entity)
	}
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	}
	return nil
}

// rejectTaken guards a freshly generated id against an existing record.
func rejectTaken(taken bool, err error, message string) error {
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check id")
	}
	if taken {
		return dErrors.New(dErrors.CodeConflict, message)
	}
	return nil
}

// wrapStoreErr translates store sentinels into domain errors.
func wrapStoreErr(err error, entity, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, entity+" id already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action+" "+entity)
	}
}

func (s *Service) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, dErrors.Message(err))
	}
	span.End()
}

func (s *Service) logAudit(ctx context.Context, event audit.Action, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	personID := attrs.ExtractString(attributes, "person_id")
	subject := attrs.ExtractString(attributes, "subject")
	if subject == "" {
		subject = personID
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		PersonID: id.PersonID(personID),
		Subject:  subject,
		Action:   string(event),
	}); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "event", string(event), "error", err)
	}
}

func (s *Service) logDebug(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.DebugContext(ctx, msg, args...)
	}
}

func (s *Service) incrementCreated(entity string) {
	if s.metrics != nil {
		s.metrics.IncrementCreated(entity)
	}
}

func (s *Service) incrementDeleted(entity string) {
	if s.metrics != nil {
		s.metrics.IncrementDeleted(entity)
	}
}

func (s *Service) addCascadeRemoved(entity string, n int) {
	if s.metrics != nil && n > 0 {
		s.metrics.AddCascadeRemoved(entity, n)
	}
}
