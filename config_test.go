package oneclient

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := defaultConfig()
	cfg.API.BaseURL = "https://one.example.com/api"
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, "BaseURL"},
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://x" }, "http"},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, "Timeout"},
		{"negative leeway", func(c *Config) { c.Session.ExpiryLeeway = -time.Second }, "ExpiryLeeway"},
		{"relative login path", func(c *Config) { c.Guard.LoginPath = "login" }, "LoginPath"},
		{"audit buffer", func(c *Config) { c.Audit.Enabled = true; c.Audit.BufferSize = 0 }, "BufferSize"},
		{"relative nav path", func(c *Config) {
			c.Navigation.Entries = []NavigationEntry{{Path: "x", Label: "X"}}
		}, "absolute"},
		{"missing nav label", func(c *Config) {
			c.Navigation.Entries = []NavigationEntry{{Path: "/x"}}
		}, "label"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestCloneConfigDetachesNavigation(t *testing.T) {
	cfg := validConfig()
	cfg.Navigation.Entries = []NavigationEntry{{Path: "/a", Label: "A", AllowedRoles: []Role{RoleAdmin}}}

	clone := cloneConfig(cfg)
	cfg.Navigation.Entries[0].AllowedRoles[0] = RoleEmployee

	if clone.Navigation.Entries[0].AllowedRoles[0] != RoleAdmin {
		t.Fatal("clone shares the original allow-list")
	}
}
