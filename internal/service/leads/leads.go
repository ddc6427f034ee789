package leads

import (
	"context"
	"encoding/base64"

	"bestdeal-service/internal/domain/lead"
	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/repository"
	"bestdeal-service/internal/service/email"

	"go.uber.org/zap"
)

// Mailer is the notification collaborator. Its failures are logged and never
// surfaced to the caller.
type Mailer interface {
	Send(subject, bodyHTML string, attachments []email.Attachment) error
}

// base64SnippetLen is how much of an upload's base64 encoding is kept in the
// stored lead for audit purposes. Full content goes to the mailer only.
const base64SnippetLen = 64

type LeadService struct {
	store  repository.Store
	mailer Mailer
	logger *zap.Logger
}

func NewLeadService(store repository.Store, mailer Mailer, logger *zap.Logger) *LeadService {
	return &LeadService{
		store:  store,
		mailer: mailer,
		logger: logger,
	}
}

// Submit runs the shared lead cycle: validate, persist with the subject
// discriminator, then notify. Validation failures produce no side effects;
// notification failures never fail the submission.
func (s *LeadService) Submit(ctx context.Context, p lead.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.persist(ctx, p); err != nil {
		return err
	}
	s.notify(p.Subject(), p.HTML(), nil)
	return nil
}

// SubmitSellTrade reduces each upload to an audit snippet before persistence
// and forwards the full bytes to the mailer as attachments.
func (s *LeadService) SubmitSellTrade(ctx context.Context, p *lead.SellTrade, uploads []email.Attachment) error {
	p.Files = fileRefs(uploads)
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.persist(ctx, p); err != nil {
		return err
	}
	s.notify(p.Subject(), p.HTML(), uploads)
	return nil
}

// SubmitFeedback reports whether the feedback is public. A rating of 5 is
// public praise: it is neither persisted nor emailed. Ratings 1-4 go through
// the normal cycle as private feedback.
func (s *LeadService) SubmitFeedback(ctx context.Context, p *lead.Feedback) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if p.Rating == 5 {
		return true, nil
	}
	if err := s.persist(ctx, p); err != nil {
		return false, err
	}
	s.notify(p.Subject(), p.HTML(), nil)
	return false, nil
}

func (s *LeadService) persist(ctx context.Context, p lead.Payload) error {
	fields, err := repository.Fields(p)
	if err != nil {
		return xerrors.Wrap(err, "failed to encode lead")
	}
	fields["subject"] = p.Subject()

	if _, err := s.store.Create(ctx, repository.LeadCollection, fields); err != nil {
		s.logger.Error("failed to persist lead",
			zap.String("subject", p.Subject()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// notify is a separate effect after persistence: its outcome is only logged.
func (s *LeadService) notify(subject, bodyHTML string, attachments []email.Attachment) {
	if err := s.mailer.Send(subject, bodyHTML, attachments); err != nil {
		s.logger.Warn("lead notification failed",
			zap.String("subject", subject),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("lead notification attempted", zap.String("subject", subject))
}

func fileRefs(uploads []email.Attachment) []lead.FileRef {
	refs := make([]lead.FileRef, 0, len(uploads))
	for _, u := range uploads {
		refs = append(refs, lead.FileRef{
			Filename:    u.Filename,
			ContentType: u.MimeType,
			Base64:      base64Snippet(u.Content),
		})
	}
	return refs
}

func base64Snippet(content []byte) string {
	enc := base64.StdEncoding.EncodeToString(content)
	if len(enc) > base64SnippetLen {
		enc = enc[:base64SnippetLen]
	}
	return enc + "..."
}
