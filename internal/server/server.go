package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/connectome-neuprint/neuprint-go/internal/config"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
)

// SelfSignedCertFile is the name, inside os.TempDir, of the file the
// generated certificate is written to by Run.
const SelfSignedCertFile = "neuprint-sandbox-cert.pem"

type server struct {
	httpServer *http.Server
	certPEM    []byte
	selfSigned bool

	address         string
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer prepares an HTTPS server for handler. The key pair comes from
// cfg when set; otherwise a self-signed certificate is generated.
func NewServer(handler http.Handler, cfg *config.SandboxConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handler == nil {
		return nil, errNoHandler
	}

	s := &server{
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = config.DefaultShutdownTimeout
	}

	var (
		cert tls.Certificate
		err  error
	)
	if cfg.TLSCertFile != "" {
		cert, s.certPEM, err = loadKeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		cert, s.certPEM, err = generateSelfSigned(cfg.Address, time.Now())
		s.selfSigned = true
	}
	if err != nil {
		return nil, err
	}

	s.httpServer = newHTTPServer(handler, cfg.Address, cert)
	return s, nil
}

func (s *server) CertificatePEM() []byte {
	return s.certPEM
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if s.selfSigned {
		path := filepath.Join(os.TempDir(), SelfSignedCertFile)
		if err := writeCertificate(path, s.certPEM); err != nil {
			return err
		}
		s.logger.Info().Str("ca_cert", path).Msg("serving self-signed certificate; pass it to the client with --ca-cert")
	}

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	return s.Serve(ctx, ln)
}

func (s *server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTPS server")
		serveErr <- s.httpServer.ServeTLS(ln, "", "")
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTPS server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTPS server Shutdown: %w", err)
	}
	<-serveErr

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
