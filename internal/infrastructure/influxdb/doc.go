// Package influxdb provides InfluxDB connectivity for the devparam export
// layer.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched point writing, and health monitoring. The export
// layer uses it to record per-run categorisation statistics as time series.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.SetOnError(func(err error) {
//	    logger.Warn("influxdb write failed", "error", err)
//	})
//	err = client.WritePoints(points...)
//	client.Flush()
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via a
// callback. Connection and health check errors are returned directly.
package influxdb
