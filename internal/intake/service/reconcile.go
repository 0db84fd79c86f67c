package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/metrics"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/idx"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

// SSNEncrypter turns a plaintext SSN into the opaque value that is stored.
type SSNEncrypter interface {
	EncryptString(plaintext string) (string, error)
}

// AuditSink receives raw integration responses. Record must not block.
type AuditSink interface {
	Record(firmID string, response any, matterID string)
}

// ImportRequest is one record to reconcile.
type ImportRequest struct {
	Firm            domain.Firm
	Row             domain.Row // Caller's echo-back row; copied, never mutated
	Fields          domain.IncomingRecord
	IntegrationType domain.IntegrationType
	IntegrationID   string
	MatterID        string
	SourceResponse  any // Raw integration payload for the audit log
	CreateNewClient bool
	DryRun          bool
}

// errDryRun rolls back a dry run transaction that otherwise succeeded.
var errDryRun = errors.New("dry run")

// ReconcileService decides whether a record creates a client, updates one or
// is rejected, and applies that decision inside a single transaction.
type ReconcileService struct {
	Phones  *PhoneFilter
	Matcher *Matcher
	Cipher  SSNEncrypter
	Audit   AuditSink
	Metrics *metrics.Metrics
}

// ImportClient reconciles one record against st. It never returns an error or
// panics: every failure is reported through Outcome.Err. Duplicate identity
// and persistence failures roll back any write made for the record. A dry run
// decides exactly as a real run but never writes, so it reports success for
// records that would collide with existing identities at write time.
func (s *ReconcileService) ImportClient(ctx context.Context, st store.Store, req ImportRequest) (out domain.Outcome) {
	start := time.Now()
	log := slogx.FromContext(ctx).With(
		slog.String("firm_id", req.Firm.ID),
		slog.String("integration_type", req.IntegrationType.String()),
	)
	ctx = slogx.WithContext(ctx, log)

	out = domain.Outcome{Row: req.Row.Clone()}
	defer func() {
		if r := recover(); r != nil {
			log.Error("reconcile panicked", slog.Any("panic", r))
			out = reject(out, persistenceFailure(fmt.Errorf("%v", r)))
		}
		s.observe(out, req.IntegrationType, start)
	}()

	rec := Normalize(req.Fields)
	names := ResolveNames(rec)

	out.CompanyName = rec.CompanyName()
	out.Row[domain.RowEmail] = rec.Email
	out.Row[domain.RowFirstName] = names.First
	out.Row[domain.RowLastName] = names.Last
	out.Row[domain.RowCellPhone] = PhoneDisplay(rec.Phones)

	filtered := s.phoneFilter().Filter(ctx, req.Firm, rec.Phones)

	if req.SourceResponse != nil && !req.DryRun && s.Audit != nil {
		s.Audit.Record(req.Firm.ID, req.SourceResponse, req.MatterID)
	}

	in := reconcileInput{req: req, rec: rec, names: names, filtered: filtered}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		out = s.reconcile(ctx, tx, in, out)
		if out.Err != nil && out.Err.Kind.RollsBack() {
			return out.Err
		}
		if req.DryRun {
			return errDryRun
		}
		return nil
	})

	var importErr *domain.ImportError
	switch {
	case err == nil, errors.Is(err, errDryRun), errors.As(err, &importErr):
	default:
		// Begin or commit failed.
		log.Error("reconcile transaction failed", slog.Any("error", err))
		out = reject(out, persistenceFailure(err))
	}

	if out.Err != nil {
		log.Warn("record rejected",
			slog.String("kind", string(out.Err.Kind)),
			slog.String("message", out.Err.Message),
		)
	}
	return out
}

type reconcileInput struct {
	req      ImportRequest
	rec      domain.NormalizedRecord
	names    domain.Names
	filtered []string
}

func (in reconcileInput) primaryPhone() string {
	if len(in.filtered) == 0 {
		return ""
	}
	return in.filtered[0]
}

func (s *ReconcileService) reconcile(ctx context.Context, tx store.Store, in reconcileInput, out domain.Outcome) domain.Outcome {
	match, err := s.matcher().Match(ctx, tx, in.req.Firm, MatchInput{
		IntegrationID: in.req.IntegrationID,
		Email:         in.rec.Email,
		Phones:        in.filtered,
		Names:         in.names,
	})
	if err != nil {
		return reject(out, persistenceFailure(err))
	}

	out.MatchedBy = match.Strategy
	out.MatchedPhone = match.MatchedPhone
	if match.Found() {
		s.Metrics.IncrementMatch(string(match.Strategy))
	}

	if match.HasClient() {
		if match.MatchedPhone != "" {
			out.Row[domain.RowCellPhone] = match.MatchedPhone
		}
		return s.update(ctx, tx, in, *match.Client, out)
	}

	// An orphaned user already identifies the person, so validation is
	// skipped. Creation still needs the caller's consent.
	if !match.HasOrphanOnly() {
		if verr := Validate(in.names, in.req.Firm, in.req.IntegrationType, in.filtered, in.rec.Phones); verr != nil {
			return reject(out, verr)
		}
	}
	if !in.req.CreateNewClient {
		return reject(out, creationDisabled())
	}
	return s.create(ctx, tx, in, match.Orphan, out)
}

func (s *ReconcileService) create(ctx context.Context, tx store.Store, in reconcileInput, orphan *domain.User, out domain.Outcome) domain.Outcome {
	log := slogx.FromContext(ctx)

	email := in.rec.Email
	if orphan != nil {
		email = ""
	} else if email != "" {
		_, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			log.Info("email already owned by a user, creating client without email")
			email = ""
		case errors.Is(err, store.ErrNotFound):
		default:
			return reject(out, persistenceFailure(err))
		}
	}

	c := domain.Client{
		ID:            idx.New().String(),
		FirmID:        in.req.Firm.ID,
		FirstName:     in.names.First,
		LastName:      in.names.Last,
		BirthDate:     in.rec.BirthDate,
		Email:         email,
		CellPhone:     in.primaryPhone(),
		IntegrationID: in.req.IntegrationID,
	}
	if in.rec.SSN != "" {
		enc, err := s.encryptSSN(in.rec.SSN)
		if err != nil {
			return reject(out, persistenceFailure(err))
		}
		c.SSN = enc
	}

	created := c
	if in.req.DryRun {
		created.CreatedAt = time.Now().UTC()
		created.UpdatedAt = created.CreatedAt
	} else {
		if err := tx.Clients().CreateClient(ctx, c); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return reject(out, duplicateIdentity(in.rec.Email, in.primaryPhone()))
			}
			return reject(out, persistenceFailure(err))
		}
		if orphan != nil {
			if err := tx.Users().AttachClient(ctx, orphan.ID, c.ID); err != nil {
				return reject(out, persistenceFailure(err))
			}
		}

		var err error
		created, err = tx.Clients().GetClientByID(ctx, c.ID)
		if err != nil {
			return reject(out, persistenceFailure(err))
		}
	}

	log.Info("client created",
		slog.String("client_id", created.ID),
		slog.Bool("dry_run", in.req.DryRun),
	)
	out.CreatedClient = true
	out.Client = &created
	out.Fields = populatedFields(created)
	out.SuccessMessage = domain.MsgClientCreated
	out.Row[domain.RowSuccessMsg] = domain.MsgClientCreated
	return out
}

func (s *ReconcileService) update(ctx context.Context, tx store.Store, in reconcileInput, c domain.Client, out domain.Outcome) domain.Outcome {
	out.Client = &c

	settings := in.req.Firm.Settings
	if !settings.UpdatesEnabled() {
		return out
	}

	patch, err := s.buildPatch(in, c)
	if err != nil {
		return reject(out, persistenceFailure(err))
	}

	updated := c
	changed := patch.ApplyTo(&updated)
	if len(changed) == 0 {
		return out
	}

	reloaded := updated
	if in.req.DryRun {
		reloaded.UpdatedAt = time.Now().UTC()
	} else {
		if err := tx.Clients().UpdateClient(ctx, updated); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return reject(out, duplicateIdentity(updated.Email, updated.CellPhone))
			}
			return reject(out, persistenceFailure(err))
		}
		reloaded, err = tx.Clients().GetClientByID(ctx, c.ID)
		if err != nil {
			return reject(out, persistenceFailure(err))
		}
	}

	slogx.FromContext(ctx).Info("client updated",
		slog.String("client_id", c.ID),
		slog.Any("fields", changed),
		slog.Bool("dry_run", in.req.DryRun),
	)
	out.UpdatedClient = true
	out.Client = &reloaded
	out.Fields = changed
	out.SuccessMessage = domain.MsgClientUpdated
	out.Row[domain.RowSuccessMsg] = domain.MsgClientUpdated
	return out
}

// buildPatch computes the merge for a matched client from the firm settings.
// Contact info sync never clears the cell phone. Missing data only fills
// empty SSN and integration id; birth date may be replaced by authoritative
// sources.
func (s *ReconcileService) buildPatch(in reconcileInput, c domain.Client) (domain.ClientPatch, error) {
	var p domain.ClientPatch
	settings := in.req.Firm.Settings

	if settings.SyncClientContactInfo {
		p.FirstName = present(in.names.First)
		p.LastName = present(in.names.Last)
		p.Email = present(in.rec.Email)
		p.CellPhone = present(in.primaryPhone())
	}

	if settings.UpdateClientMissingData {
		if bd := in.rec.BirthDate; bd != "" {
			if c.BirthDate == "" || in.req.IntegrationType.OverwritesBirthDate() {
				p.BirthDate = &bd
			}
		}
		if iid := in.req.IntegrationID; iid != "" && c.IntegrationID == "" {
			p.IntegrationID = &iid
		}
		if in.rec.SSN != "" && c.SSN == "" {
			enc, err := s.encryptSSN(in.rec.SSN)
			if err != nil {
				return domain.ClientPatch{}, err
			}
			p.SSN = &enc
		}
	}
	return p, nil
}

func (s *ReconcileService) encryptSSN(ssn string) (string, error) {
	if s.Cipher == nil {
		return "", errors.New("no SSN cipher configured")
	}
	enc, err := s.Cipher.EncryptString(ssn)
	if err != nil {
		return "", fmt.Errorf("encrypt ssn: %w", err)
	}
	return enc, nil
}

func (s *ReconcileService) phoneFilter() *PhoneFilter {
	if s.Phones == nil {
		return NewPhoneFilter()
	}
	return s.Phones
}

func (s *ReconcileService) matcher() *Matcher {
	if s.Matcher == nil {
		return &Matcher{OrphanLookup: OrphanLookupAfterPhones}
	}
	return s.Matcher
}

func (s *ReconcileService) observe(out domain.Outcome, t domain.IntegrationType, start time.Time) {
	result := metrics.ResultUnchanged
	kind := ""
	switch {
	case out.Err != nil:
		result = metrics.ResultRejected
		kind = string(out.Err.Kind)
	case out.CreatedClient:
		result = metrics.ResultCreated
	case out.UpdatedClient:
		result = metrics.ResultUpdated
	}
	s.Metrics.ObserveReconcile(result, kind, t.String(), start)
}

// reject records err on the outcome and clears any success state, so that
// exactly one of created, updated or rejected holds.
func reject(out domain.Outcome, err *domain.ImportError) domain.Outcome {
	out.CreatedClient = false
	out.UpdatedClient = false
	out.Fields = nil
	out.SuccessMessage = ""
	delete(out.Row, domain.RowSuccessMsg)

	out.Err = err
	if len(err.Fields) > 0 {
		out.Row[domain.RowErrorFields] = err.Fields
	}
	out.Row[domain.RowErrorMessage] = err.Message
	return out
}

func persistenceFailure(err error) *domain.ImportError {
	return &domain.ImportError{Kind: domain.ErrPersistenceFailure, Message: err.Error()}
}

func duplicateIdentity(email, phone string) *domain.ImportError {
	return &domain.ImportError{
		Kind:    domain.ErrDuplicateIdentity,
		Message: fmt.Sprintf(domain.MsgUserAlreadyExists, email, phone),
	}
}

func present(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func populatedFields(c domain.Client) []string {
	var fields []string
	for _, f := range []struct {
		name string
		val  string
	}{
		{domain.FieldFirstName, c.FirstName},
		{domain.FieldLastName, c.LastName},
		{domain.FieldEmail, c.Email},
		{domain.FieldCellPhone, c.CellPhone},
		{domain.FieldBirthDate, c.BirthDate},
		{domain.FieldSSN, c.SSN},
		{domain.FieldIntegrationID, c.IntegrationID},
	} {
		if f.val != "" {
			fields = append(fields, f.name)
		}
	}
	return fields
}
