package export

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nerrad567/devparam/internal/infrastructure/mqtt"
)

// fakePublisher records published topics and payloads.
type fakePublisher struct {
	topics   []string
	payloads [][]byte
	failAt   int // 1-based publish that fails; 0 never fails
	err      error
}

func (f *fakePublisher) PublishJSON(topic string, v any) error {
	if f.failAt > 0 && len(f.topics)+1 == f.failAt {
		return f.err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	return nil
}

func TestPublisher_PublishRun(t *testing.T) {
	run := testRun(t)
	fake := &fakePublisher{}
	p := NewPublisher(fake, mqtt.NewTopics("devparam"))

	if err := p.PublishRun(run); err != nil {
		t.Fatalf("PublishRun() error = %v", err)
	}

	want := []string{
		"devparam/parameter/sensor-eds/watchdog-timer-ms",
		"devparam/parameter/sensor-eds/port-layout",
		"devparam/parameter/sensor-eds/vendor-code",
		"devparam/parameter/sensor-eds/device-status",
		"devparam/run/" + run.ID.String() + "/statistics",
	}
	if len(fake.topics) != len(want) {
		t.Fatalf("published %d messages, want %d: %v", len(fake.topics), len(want), fake.topics)
	}
	for i := range want {
		if fake.topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, fake.topics[i], want[i])
		}
	}

	var param ParameterMessage
	if err := json.Unmarshal(fake.payloads[1], &param); err != nil {
		t.Fatalf("parameter payload: %v", err)
	}
	if param.RunID != run.ID || param.Position != 1 || param.Source != "sensor.eds" {
		t.Errorf("parameter message header = %s/%d/%q", param.RunID, param.Position, param.Source)
	}
	if param.Parameter.Record.Name != "Port Layout" || param.Parameter.Enum == nil {
		t.Errorf("parameter message body = %+v", param.Parameter)
	}

	var stats StatisticsMessage
	if err := json.Unmarshal(fake.payloads[4], &stats); err != nil {
		t.Fatalf("statistics payload: %v", err)
	}
	if stats.Statistics.Total != 4 || stats.Statistics.CategorizationRate != 75 {
		t.Errorf("statistics message = %+v", stats.Statistics)
	}
}

func TestPublisher_RecordSourceWins(t *testing.T) {
	run := testRun(t)
	run.Parameters[0].Record.Source = "bundle/other.eds"
	fake := &fakePublisher{}

	if err := NewPublisher(fake, mqtt.NewTopics("")).PublishRun(run); err != nil {
		t.Fatalf("PublishRun() error = %v", err)
	}
	if want := "devparam/parameter/bundle-other-eds/watchdog-timer-ms"; fake.topics[0] != want {
		t.Errorf("topics[0] = %q, want %q", fake.topics[0], want)
	}
}

func TestPublisher_StopsAtFirstFailure(t *testing.T) {
	brokerDown := errors.New("broker down")
	fake := &fakePublisher{failAt: 2, err: brokerDown}
	p := NewPublisher(fake, mqtt.NewTopics("devparam"))

	err := p.PublishRun(testRun(t))
	if !errors.Is(err, brokerDown) {
		t.Fatalf("PublishRun() error = %v, want %v", err, brokerDown)
	}
	if len(fake.topics) != 1 {
		t.Errorf("published %d messages before failure, want 1", len(fake.topics))
	}
}

func TestPublisher_ExportCancelled(t *testing.T) {
	fake := &fakePublisher{}
	p := NewPublisher(fake, mqtt.NewTopics("devparam"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Export(ctx, testRun(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Export() error = %v, want context.Canceled", err)
	}
	if len(fake.topics) != 0 {
		t.Errorf("published %d messages after cancellation", len(fake.topics))
	}
}
