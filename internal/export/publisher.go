package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/devparam/internal/infrastructure/mqtt"
	"github.com/nerrad567/devparam/internal/report"
)

// JSONPublisher publishes a value as a retained JSON message.
// *mqtt.Client satisfies it.
type JSONPublisher interface {
	PublishJSON(topic string, v any) error
}

// ParameterMessage is the retained document for one parameter.
type ParameterMessage struct {
	RunID     uuid.UUID                `json:"run_id"`
	Source    string                   `json:"source"`
	Position  int                      `json:"position"`
	Parameter report.EnrichedParameter `json:"parameter"`
}

// StatisticsMessage is the retained document for one run.
type StatisticsMessage struct {
	RunID      uuid.UUID         `json:"run_id"`
	Source     string            `json:"source"`
	CreatedAt  time.Time         `json:"created_at"`
	Statistics report.Statistics `json:"statistics"`
}

// Publisher publishes runs to MQTT.
//
// Parameters with the same source and slugged name share a topic, so the
// later one is what the broker retains.
type Publisher struct {
	client JSONPublisher
	topics mqtt.Topics
}

// NewPublisher returns a Publisher writing under the topics' prefix.
func NewPublisher(client JSONPublisher, topics mqtt.Topics) *Publisher {
	return &Publisher{client: client, topics: topics}
}

// Name identifies the sink in logs.
func (p *Publisher) Name() string {
	return "mqtt"
}

// Export publishes run, stopping early if ctx is cancelled. It implements Sink.
func (p *Publisher) Export(ctx context.Context, run report.Run) error {
	return p.publish(ctx, run)
}

// PublishRun publishes every parameter of run, then its statistics.
// It stops at the first failed publish.
func (p *Publisher) PublishRun(run report.Run) error {
	return p.publish(context.Background(), run)
}

func (p *Publisher) publish(ctx context.Context, run report.Run) error {
	for i, param := range run.Parameters {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("publishing run %s: %w", run.ID, err)
		}

		source := parameterSource(run, param)
		msg := ParameterMessage{
			RunID:     run.ID,
			Source:    source,
			Position:  i,
			Parameter: param,
		}
		if err := p.client.PublishJSON(p.topics.Parameter(source, param.Record.Name), msg); err != nil {
			return fmt.Errorf("publishing parameter %q: %w", param.Record.Name, err)
		}
	}

	msg := StatisticsMessage{
		RunID:      run.ID,
		Source:     run.Source,
		CreatedAt:  run.CreatedAt,
		Statistics: run.Statistics,
	}
	if err := p.client.PublishJSON(p.topics.RunStatistics(run.ID.String()), msg); err != nil {
		return fmt.Errorf("publishing run statistics: %w", err)
	}
	return nil
}
