package tracing

import (
	"io"
	"signoff/common"

	"github.com/sirupsen/logrus"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// Bootstrap installs the global tracer from JAEGER_* environment variables.
// Without them a no-op tracer is kept in place.
func Bootstrap() io.Closer {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		logrus.Warn("tracing disabled: ", err)
		return nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = common.GetServiceName()
	}

	closer, err := cfg.InitGlobalTracer(cfg.ServiceName)
	if err != nil {
		logrus.Warn("tracing disabled: ", err)
		return nil
	}
	return closer
}
