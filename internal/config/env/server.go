package envconfig

import (
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type httpServerEnv struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8000"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type httpServer struct {
	raw httpServerEnv
}

func NewHTTPServerConfig() (*httpServer, error) {
	var raw httpServerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &httpServer{raw: raw}, nil
}

func (cfg *httpServer) Address() string {
	return net.JoinHostPort(cfg.raw.Host, strconv.Itoa(cfg.raw.Port))
}

func (cfg *httpServer) ReadTimeout() time.Duration     { return cfg.raw.ReadTimeout }
func (cfg *httpServer) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
