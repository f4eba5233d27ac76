// Package mqtt provides the MQTT publishing client used by the devparam
// export layer.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Topic building under a configurable prefix
//
// The client only publishes. Enriched parameter documents and run
// statistics are written as retained messages so that a subscriber joining
// later sees the most recent export.
//
// # Topics
//
//	<prefix>/status                         online/offline (retained, LWT)
//	<prefix>/parameter/<source>/<name>      one enriched parameter
//	<prefix>/run/<run-id>/statistics        statistics of one export run
//
// Source and name segments are slugged with Segment so that they never
// contain '/', '+' or '#'.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topics := mqtt.NewTopics(cfg.MQTT.TopicPrefix)
//	err = client.PublishRetained(topics.Parameter("sensor.eds", "Port Layout"), payload)
package mqtt
