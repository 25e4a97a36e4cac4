package capture

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/latency"
)

// ticksPerSecond is the timestamp resolution of generated captures. A
// power of two keeps every timestamp exact in a float64, so the expected
// samples match what the delta extractor computes.
const ticksPerSecond = 1024

// Generator produces seeded synthetic captures together with the latency
// samples an extractor should recover from them.
type Generator struct {
	faker  *gofakeit.Faker
	events config.EventNames
	tick   int64
}

// NewGenerator creates a Generator. The same seed yields the same capture.
func NewGenerator(seed uint64, events config.EventNames) *Generator {
	return &Generator{
		faker:  gofakeit.New(seed),
		events: events,
		tick:   1_700_000_000 * ticksPerSecond,
	}
}

// Legacy writes interactions play/skip triggers, each answered by an audio
// start, with unrelated events in between. It returns the samples a delta
// extraction yields.
func (g *Generator) Legacy(w *Writer, interactions int) (latency.Samples, error) {
	want := make(latency.Samples)

	if err := w.Log(g.now(), "app.launch", nil); err != nil {
		return nil, err
	}
	// A completion with nothing pending must not produce a sample.
	if err := w.Log(g.advance(10, 200), g.events.AudioStarted, map[string]string{"trackKey": g.faker.UUID()}); err != nil {
		return nil, err
	}

	w.StartPlaybackSession()
	for i := 0; i < interactions; i++ {
		trigger, op := g.trigger()
		start := g.advance(500, 5000)
		if err := w.Log(start, trigger, g.triggerData(trigger)); err != nil {
			return nil, err
		}
		startTick := g.tick

		trackKey := g.faker.UUID()
		if err := w.Log(g.advance(1, 40), "playback.state_change", map[string]string{
			"trackKey":  trackKey,
			"isPlaying": "true",
		}); err != nil {
			return nil, err
		}
		if g.faker.Bool() {
			if err := w.Log(g.advance(1, 40), "navigation.tab_change", map[string]string{
				"tab": g.faker.RandomString([]string{"library", "playlists", "settings"}),
			}); err != nil {
				return nil, err
			}
		}

		if err := w.Log(g.advance(20, 1500), g.events.AudioStarted, map[string]string{"trackKey": trackKey}); err != nil {
			return nil, err
		}
		want.Add(op, (g.tick-startTick)*1000/ticksPerSecond)
	}
	w.EndPlaybackSession()

	return want, nil
}

// Explicit writes interactions latency events, some without a duration,
// mixed with legacy events that must be ignored. It returns the samples an
// explicit extraction yields.
func (g *Generator) Explicit(w *Writer, interactions int) (latency.Samples, error) {
	want := make(latency.Samples)
	operations := []string{"play", "skip_next", "skip_previous", "seek", "queue_load"}

	w.StartPlaybackSession()
	for i := 0; i < interactions; i++ {
		if err := w.Log(g.advance(100, 2000), g.events.Play, nil); err != nil {
			return nil, err
		}
		if err := w.Log(g.advance(20, 400), g.events.AudioStarted, nil); err != nil {
			return nil, err
		}

		op := g.faker.RandomString(operations)
		if g.faker.IntRange(0, 9) == 0 {
			if err := w.Log(g.now(), g.events.Latency, map[string]string{"operation": op}); err != nil {
				return nil, err
			}
			continue
		}

		ms := int64(g.faker.IntRange(5, 2500))
		if err := w.LogLatency(g.now(), g.events.Latency, op, ms); err != nil {
			return nil, err
		}
		want.Add(op, ms)
	}
	w.EndPlaybackSession()

	return want, nil
}

func (g *Generator) trigger() (event, operation string) {
	switch g.faker.IntRange(0, 3) {
	case 0:
		return g.events.SkipNext, latency.OperationSkipToAudio
	case 1:
		return g.events.SkipPrevious, latency.OperationSkipToAudio
	default:
		return g.events.Play, latency.OperationPlayToAudio
	}
}

func (g *Generator) triggerData(event string) map[string]string {
	if event != g.events.Play {
		return nil
	}
	count := g.faker.IntRange(1, 30)
	return map[string]string{
		"trackCount": strconv.Itoa(count),
		"startIndex": strconv.Itoa(g.faker.IntRange(0, count-1)),
	}
}

// advance moves the clock forward by a random number of milliseconds in
// [minMs, maxMs] and returns the new timestamp.
func (g *Generator) advance(minMs, maxMs int) float64 {
	g.tick += int64(g.faker.IntRange(minMs, maxMs)) * ticksPerSecond / 1000
	return g.now()
}

func (g *Generator) now() float64 {
	return float64(g.tick) / ticksPerSecond
}
