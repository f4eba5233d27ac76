package export

import (
	"github.com/nerrad567/devparam/internal/infrastructure/influxdb"
	"github.com/nerrad567/devparam/internal/infrastructure/logging"
	"github.com/nerrad567/devparam/internal/infrastructure/mqtt"
)

var (
	_ JSONPublisher = (*mqtt.Client)(nil)
	_ PointWriter   = (*influxdb.Client)(nil)
	_ Logger        = (*logging.Logger)(nil)
)
