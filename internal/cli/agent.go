package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/arrmcp/arrmcp/internal/agent"
	"github.com/arrmcp/arrmcp/internal/agentserver"
	"github.com/arrmcp/arrmcp/internal/config"
	"github.com/arrmcp/arrmcp/internal/endpoints"
	"github.com/arrmcp/arrmcp/internal/health"
	"github.com/arrmcp/arrmcp/internal/mcphost"
	"github.com/arrmcp/arrmcp/internal/observe"
	"github.com/arrmcp/arrmcp/internal/version"
)

// agentOptions is the effective agent configuration after the precedence
// chain is applied: flag > config file > environment > built-in default.
type agentOptions struct {
	host     string
	port     int
	debug    bool
	logLevel config.LogLevel

	provider        string
	modelID         string
	baseURL         string
	apiKey          string
	providerOptions map[string]any

	mcpURL    string
	mcpConfig string

	insecure bool
	settings agent.Settings
}

// AgentMain runs one supervisor agent to completion and returns the process
// exit code. svc supplies the category layout; extraTags maps the service's
// hand-written MCP tools to their categories.
func AgentMain(svc *endpoints.Service, extraTags map[string]string, args []string) int {
	name := svc.Slug + "-agent"
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// ── Flags ──────────────────────────────────────────────────────────────────
	host := fs.String("host", getEnv("HOST", "0.0.0.0"), "listen interface")
	port := fs.Int("port", getEnvInt("PORT", 9000), "listen port")
	debug := fs.Bool("debug", getEnvBool("DEBUG", false), "enable debug logging")
	provider := fs.String("provider", getEnv("PROVIDER", "openai"), "LLM provider name")
	modelID := fs.String("model-id", getEnv("MODEL_ID", "qwen/qwen3-coder-next"), "model identifier")
	baseURL := fs.String("base-url", getEnv("LLM_BASE_URL", "http://host.docker.internal:1234/v1"),
		"LLM API base URL")
	apiKey := fs.String("api-key", getEnv("LLM_API_KEY", "ollama"), "LLM API key")
	mcpURL := fs.String("mcp-url", getEnv("MCP_URL", ""),
		"MCP server URL; takes precedence over -mcp-config")
	mcpConfig := fs.String("mcp-config", getEnv("MCP_CONFIG", "mcp_config.json"),
		"MCP servers config file (JSONC)")
	insecure := fs.Bool("insecure", !getEnvBool("SSL_VERIFY", true),
		"skip TLS verification for MCP connections")
	chat := fs.Bool("chat", false, "interactive terminal chat instead of serving")
	configPath := fs.String("config", "", "optional YAML config file")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := agentOptions{
		host:      *host,
		port:      *port,
		debug:     *debug,
		provider:  *provider,
		modelID:   *modelID,
		baseURL:   *baseURL,
		apiKey:    *apiKey,
		mcpURL:    *mcpURL,
		mcpConfig: *mcpConfig,
		insecure:  *insecure,
		settings:  agent.SettingsFromEnv(),
	}

	// ── Config file ────────────────────────────────────────────────────────────
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			return 1
		}
		applyConfig(&opts, cfg, set)
	}

	if opts.port < 1 || opts.port > 65535 {
		fmt.Fprintf(os.Stderr, "%s: port %d is out of range [1, 65535]\n", name, opts.port)
		return 1
	}

	// ── Logger ─────────────────────────────────────────────────────────────────
	level := opts.logLevel
	if level == "" {
		level = config.LogInfo
	}
	if opts.debug {
		level = config.LogDebug
	}
	logger := newLogger(level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ──────────────────────────────────────────────────────────────
	if !*chat {
		shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
			ServiceName:    name,
			ServiceVersion: version.Version,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: init telemetry: %v\n", name, err)
			return 1
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), telemetryDrain)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("telemetry shutdown", "err", err)
			}
		}()
	}

	// ── LLM provider ───────────────────────────────────────────────────────────
	llmProvider, err := config.DefaultRegistry().CreateLLM(config.ProviderEntry{
		Name:    opts.provider,
		APIKey:  opts.apiKey,
		BaseURL: opts.baseURL,
		Model:   opts.modelID,
		Options: opts.providerOptions,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: create llm provider %q: %v\n", name, opts.provider, err)
		return 1
	}
	logger.Info("LLM provider created", "provider", opts.provider, "model", opts.modelID)

	// ── MCP host ───────────────────────────────────────────────────────────────
	var hostOpts []mcphost.Option
	if opts.insecure {
		hostOpts = append(hostOpts, mcphost.WithHTTPClient(&http.Client{
			Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
		}))
		logger.Warn("TLS verification disabled for MCP connections")
	}
	toolHost := mcphost.New(name, version.Version, hostOpts...)
	defer toolHost.Close()

	if opts.mcpURL != "" {
		err = toolHost.ConnectURL(ctx, svc.Slug, opts.mcpURL)
	} else {
		var f *config.ServersFile
		if f, err = config.LoadServers(opts.mcpConfig); err == nil {
			err = toolHost.ConnectConfig(ctx, f)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	// ── Supervisor ─────────────────────────────────────────────────────────────
	sup, err := agent.NewSupervisor(ctx, agent.SupervisorConfig{
		Service:   svc,
		Provider:  llmProvider,
		Host:      toolHost,
		Settings:  opts.settings,
		ExtraTags: extraTags,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	if *chat {
		return runChat(ctx, sup, svc.Name)
	}

	// ── HTTP server ────────────────────────────────────────────────────────────
	srv, err := agentserver.New(agentserver.Config{
		Service: svc,
		Runner:  sup,
		Addr:    net.JoinHostPort(opts.host, strconv.Itoa(opts.port)),
		Checkers: []health.Checker{{
			Name: "mcp",
			Check: func(ctx context.Context) error {
				_, err := toolHost.Tools(ctx)
				return err
			},
		}},
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

// applyConfig merges a loaded YAML config into opts. Flags given explicitly
// on the command line keep priority; everything else the file overrides.
func applyConfig(opts *agentOptions, cfg *config.Config, set map[string]bool) {
	if cfg.Server.Host != "" && !set["host"] {
		opts.host = cfg.Server.Host
	}
	if cfg.Server.Port != 0 && !set["port"] {
		opts.port = cfg.Server.Port
	}
	if cfg.Server.Debug && !set["debug"] {
		opts.debug = true
	}
	opts.logLevel = cfg.Server.LogLevel

	if cfg.Provider.Name != "" && !set["provider"] {
		opts.provider = cfg.Provider.Name
	}
	if cfg.Provider.Model != "" && !set["model-id"] {
		opts.modelID = cfg.Provider.Model
	}
	if cfg.Provider.BaseURL != "" && !set["base-url"] {
		opts.baseURL = cfg.Provider.BaseURL
	}
	if cfg.Provider.APIKey != "" && !set["api-key"] {
		opts.apiKey = cfg.Provider.APIKey
	}
	opts.providerOptions = cfg.Provider.Options

	if cfg.MCP.URL != "" && !set["mcp-url"] {
		opts.mcpURL = cfg.MCP.URL
	}
	if cfg.MCP.ConfigPath != "" && !set["mcp-config"] {
		opts.mcpConfig = cfg.MCP.ConfigPath
	}

	// Model settings: nil fields keep the environment-derived values.
	if cfg.Model.MaxTokens != nil {
		opts.settings.MaxTokens = *cfg.Model.MaxTokens
	}
	if cfg.Model.Temperature != nil {
		opts.settings.Temperature = *cfg.Model.Temperature
	}
	if cfg.Model.ParallelToolCalls != nil {
		opts.settings.ParallelToolCalls = *cfg.Model.ParallelToolCalls
	}
	if cfg.Model.Timeout != nil {
		opts.settings.Timeout = time.Duration(*cfg.Model.Timeout * float64(time.Second))
	}
	if cfg.Model.ToolTimeout != nil {
		opts.settings.ToolTimeout = time.Duration(*cfg.Model.ToolTimeout * float64(time.Second))
	}

	// Prompt overrides ride the environment variables the agent already
	// consults, so the file wins over a pre-set variable.
	if cfg.Prompts.Supervisor != "" {
		os.Setenv("SUPERVISOR_SYSTEM_PROMPT", cfg.Prompts.Supervisor)
	}
	for tag, prompt := range cfg.Prompts.Agents {
		if prompt != "" {
			os.Setenv(strings.ToUpper(tag)+"_AGENT_PROMPT", prompt)
		}
	}
}
