// Package export hands enriched parameter runs to the outside world.
//
// Three sinks are provided:
//   - SQLiteStore keeps a queryable snapshot of every run
//   - Publisher publishes retained documents to an MQTT broker
//   - StatsWriter records run statistics as InfluxDB points
//
// Each implements Sink, and Fanout drives any combination of them. A sink
// that fails is logged and skipped; the remaining sinks still receive the
// run.
package export
