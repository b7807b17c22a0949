// Command onectl is a terminal client for an Enterprise One workspace:
// it logs in, persists the session token, and inspects the resulting
// session and navigation.
//
// Usage:
//
//	onectl [flags] login|logout|whoami|nav|refresh
//
// Configuration is read from a YAML file (--config, default
// ~/.config/enterprise-one/onectl.yaml) and overridden by flags.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	oneclient "github.com/enterpriseone/oneclient"
	"github.com/enterpriseone/oneclient/store"
)

type fileConfig struct {
	APIURL    string        `yaml:"api_url"`
	TokenPath string        `yaml:"token_path"`
	Timeout   time.Duration `yaml:"timeout"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "onectl:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = pflag.String("config", defaultConfigPath(), "path to the YAML config file")
		apiURL     = pflag.String("api-url", "", "platform API root, including its /api prefix")
		tokenPath  = pflag.String("token-path", "", "path of the persisted session token")
		timeout    = pflag.Duration("timeout", 0, "request timeout")
		email      = pflag.String("email", "", "account email (login)")
		password   = pflag.String("password", "", "account password (login; prompted when empty)")
		asJSON     = pflag.Bool("json", false, "print results as JSON")
	)
	pflag.Parse()

	if pflag.NArg() < 1 {
		return errors.New("missing command: login, logout, whoami, nav, or refresh")
	}
	command := pflag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *tokenPath != "" {
		cfg.TokenPath = *tokenPath
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if cfg.APIURL == "" {
		return errors.New("no API URL: set --api-url or api_url in the config file")
	}

	tokens, err := store.NewFileStore(cfg.TokenPath)
	if err != nil {
		return fmt.Errorf("open token store: %w", err)
	}

	clientCfg := oneclient.DefaultConfig()
	clientCfg.API.BaseURL = cfg.APIURL
	if cfg.Timeout > 0 {
		clientCfg.API.Timeout = cfg.Timeout
	}

	session, err := oneclient.New().
		WithConfig(clientCfg).
		WithTokenStore(tokens).
		Build()
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch command {
	case "login":
		return cmdLogin(ctx, session, *email, *password, *asJSON)
	case "logout":
		return cmdLogout(ctx, session)
	case "whoami":
		return cmdWhoami(ctx, session, *asJSON)
	case "nav":
		return cmdNav(ctx, session, *asJSON)
	case "refresh":
		return cmdRefresh(ctx, session, *asJSON)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdLogin(ctx context.Context, session *oneclient.Session, email, password string, asJSON bool) error {
	if email == "" {
		return errors.New("login requires --email")
	}
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	profile, err := session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return printProfile(profile, asJSON)
}

func cmdLogout(ctx context.Context, session *oneclient.Session) error {
	if err := session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func cmdWhoami(ctx context.Context, session *oneclient.Session, asJSON bool) error {
	if err := bootstrap(ctx, session); err != nil {
		return err
	}
	profile := session.Profile()
	if profile == nil {
		return errors.New("not logged in")
	}
	return printProfile(profile, asJSON)
}

func cmdNav(ctx context.Context, session *oneclient.Session, asJSON bool) error {
	if err := bootstrap(ctx, session); err != nil {
		return err
	}
	entries := session.Navigation()
	if entries == nil {
		return errors.New("not logged in")
	}
	if asJSON {
		return printJSON(entries)
	}
	for _, entry := range entries {
		fmt.Printf("%-16s %s\n", entry.Path, entry.Label)
	}
	return nil
}

func cmdRefresh(ctx context.Context, session *oneclient.Session, asJSON bool) error {
	if err := bootstrap(ctx, session); err != nil {
		return err
	}
	if session.Status() != oneclient.StatusAuthenticated {
		return errors.New("not logged in")
	}
	if err := session.Refresh(ctx); err != nil {
		if errors.Is(err, oneclient.ErrSessionExpired) {
			return errors.New("session expired; log in again")
		}
		return err
	}
	return printProfile(session.Profile(), asJSON)
}

func bootstrap(ctx context.Context, session *oneclient.Session) error {
	err := session.Bootstrap(ctx)
	if err != nil && !errors.Is(err, oneclient.ErrBootstrapped) {
		return fmt.Errorf("resume session: %w", err)
	}
	return nil
}

func printProfile(profile *oneclient.Profile, asJSON bool) error {
	if asJSON {
		return printJSON(profile)
	}
	fmt.Printf("%s <%s>\n", profile.Name, profile.Email)
	fmt.Printf("role: %s  company: %s  plan: %s\n", profile.Role, profile.Company, profile.Subscription)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "onectl.yaml"
	}
	return filepath.Join(dir, "enterprise-one", "onectl.yaml")
}
