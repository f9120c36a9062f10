package submissionevents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

// publisher is the part of *nats.Conn the event publisher needs
type publisher interface {
	Publish(subj string, data []byte) error
}

var (
	_ secondary.SubmissionEventPublisher = (*Publisher)(nil)
	_ secondary.SubmissionEventPublisher = NoopPublisher{}
	_ publisher                          = (*nats.Conn)(nil)
)

// Publisher streams judged submissions to a NATS subject as JSON
type Publisher struct {
	conn    publisher
	subject string
	logger  primary.Logger
}

func New(conn publisher, subject string, logger primary.Logger) *Publisher {
	return &Publisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// Connect dials NATS. The caller owns the returned connection.
func Connect(cfg *config.NatsConfig, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(cfg.Url, nats.Name(name), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return nc, nil
}

func (p *Publisher) PublishJudged(ctx context.Context, event domain.SubmissionJudgedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	if err := p.conn.Publish(p.subject, b); err != nil {
		p.logger.Error("Failed to publish submission event", "submissionId", event.SubmissionID, "error", err)
		return fmt.Errorf("failed to publish submission event: %w", err)
	}

	p.logger.Debug("Published submission event", "subject", p.subject, "submissionId", event.SubmissionID)
	return nil
}

// NoopPublisher drops events. It is used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishJudged(context.Context, domain.SubmissionJudgedEvent) error {
	return nil
}
