package influxdb

import (
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WritePoint queues a single point for the next batch.
//
// The write is non-blocking; failures are reported through the SetOnError
// callback. It returns ErrNotConnected after Close.
func (c *Client) WritePoint(point *write.Point) error {
	return c.WritePoints(point)
}

// WritePoints queues points in order. Nil points are skipped.
//
// Example:
//
//	p := write.NewPoint("parameter_statistics",
//	    map[string]string{"source": "sensor.eds"},
//	    map[string]interface{}{"total": 42},
//	    time.Now())
//	err := client.WritePoints(p)
func (c *Client) WritePoints(points ...*write.Point) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	for _, p := range points {
		if p == nil {
			continue
		}
		c.writeAPI.WritePoint(p)
	}
	return nil
}
