package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nexpose-cli/internal/auth"
	"nexpose-cli/internal/client"
	"nexpose-cli/internal/config"
	"nexpose-cli/internal/exporter"
)

var (
	expPassword   string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	server    *http.Server
	api       *client.NexposeClient
	addr      string
	staleDays int
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	go p.run()
	return nil
}

func (p *program) run() {
	logrus.Info("Attempting initial login...")
	if _, err := p.api.Login(context.Background()); err != nil {
		// exit so the service manager attempts a restart
		logrus.Fatalf("Initial login failed: %v", err)
	}
	logrus.Info("Initial login successful.")

	registry := prometheus.NewRegistry()
	registry.MustRegister(exporter.NewCollector(p.api, p.staleDays))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: logrus.StandardLogger(),
	}))

	p.server = &http.Server{
		Addr:              p.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.Infof("Nexpose exporter listening on %s", p.addr)
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Errorf("HTTP server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	logrus.Info("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			logrus.Errorf("Server forced to shutdown: %v", err)
		}
	}
	return nil
}

// serviceConfig describes how the service manager launches the exporter.
// The password travels in NEXPOSE_PASSWORD rather than on the command line.
func serviceConfig(settings *config.Settings) *service.Config {
	cfg := &service.Config{
		Name:        "nexpose-exporter",
		DisplayName: "Nexpose Prometheus Exporter",
		Description: "Exposes Nexpose console inventory to Prometheus",
		Arguments: []string{
			"exporter",
			"--host", settings.Host,
			"--port", strconv.Itoa(settings.Port),
			"--username", settings.Username,
			"--listen-port", settings.Exporter.Port,
			"--stale-days", strconv.Itoa(settings.Exporter.StaleDays),
		},
		EnvVars: map[string]string{
			"NEXPOSE_PASSWORD": settings.Password,
		},
	}
	if settings.Insecure {
		cfg.Arguments = append(cfg.Arguments, "--insecure")
	}
	return cfg
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus exporter service",
	Long: `Starts a long-running HTTP server that exposes console inventory metrics
(sites, assets per site, scan engines, stale assets). Can be installed as a
system service; the installed service receives the password through
NEXPOSE_PASSWORD in its environment, never as an argument.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			die("Error loading config: %v", err)
		}
		if expPassword != "" {
			settings.Password = expPassword
		}

		svcConfig := serviceConfig(settings)

		if serviceAction != "" {
			if serviceAction == "install" && (settings.Host == "" || settings.Username == "" || settings.Password == "") {
				die("Error: You must provide all credentials (--host, --username, --password) to install the service.")
			}

			if serviceAction == "install" {
				logrus.Warn("the service definition stores the console password in its environment; restrict access to it")
			}

			s, err := service.New(&program{}, svcConfig)
			if err != nil {
				die("%v", err)
			}
			if err := service.Control(s, serviceAction); err != nil {
				die("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		if settings.Host == "" {
			die("Error: --host is required")
		}
		// a service has no terminal, so only prompt when credentials are incomplete
		creds := auth.Credentials{Username: settings.Username, Password: settings.Password}
		if creds.Username == "" || creds.Password == "" {
			if creds, err = auth.NewTerminalPrompter().Complete(creds); err != nil {
				die("Error reading credentials: %v", err)
			}
		}

		prg := &program{
			api:       client.New(clientConfig(settings, creds)),
			addr:      ":" + settings.Exporter.Port,
			staleDays: settings.Exporter.StaleDays,
		}
		s, err := service.New(prg, svcConfig)
		if err != nil {
			die("%v", err)
		}

		// This happens when the service manager starts the binary, or when run interactively
		if err = s.Run(); err != nil {
			logrus.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)
	exporterCmd.Flags().StringVarP(&expPassword, "password", "p", "", "Console password")
	exporterCmd.Flags().String("listen-port", "9180", "Port to listen on")
	exporterCmd.Flags().Int("stale-days", 30, "Report assets not scanned in this many days")
	_ = viper.BindPFlag("exporter.port", exporterCmd.Flags().Lookup("listen-port"))
	_ = viper.BindPFlag("exporter.stale_days", exporterCmd.Flags().Lookup("stale-days"))

	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
