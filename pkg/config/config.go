// Package config carries the deployment-specific facts of a reconciliation
// run: the managed paths, the accounts that own them, and the external
// commands the runner shells out to. Default matches a deb install; an
// optional YAML file retargets any of it (snap layouts, tests).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/JennyJYLiu/maas/pkg/dnsconfig"
)

type Config struct {
	LogFile       string `yaml:"logFile,omitempty"`
	RsyslogDir    string `yaml:"rsyslogDir,omitempty"`
	DataDir       string `yaml:"dataDir,omitempty"`
	BindConfigDir string `yaml:"bindConfigDir,omitempty"`
	OptionsFile   string `yaml:"optionsFile,omitempty"`
	LocalConfFile string `yaml:"localConfFile,omitempty"`

	ServiceUser  string `yaml:"serviceUser,omitempty"`
	ServiceGroup string `yaml:"serviceGroup,omitempty"`
	SyslogUser   string `yaml:"syslogUser,omitempty"`
	SyslogGroup  string `yaml:"syslogGroup,omitempty"`
	RootGroup    string `yaml:"rootGroup,omitempty"`
	BindGroup    string `yaml:"bindGroup,omitempty"`

	Commands Commands `yaml:"commands,omitempty"`
}

// Commands holds the argv vectors of the external collaborators. The
// runner appends target paths where a command needs one.
type Commands struct {
	GenerateNamedConf []string `yaml:"generateNamedConf,omitempty"`
	EditNamedOptions  []string `yaml:"editNamedOptions,omitempty"`
	SetupDNS          []string `yaml:"setupDns,omitempty"`
	RestartDNS        []string `yaml:"restartDns,omitempty"`
}

func Default() *Config {
	return &Config{
		LogFile:       "/var/log/maas/maas.log",
		RsyslogDir:    "/var/log/maas/rsyslog",
		DataDir:       "/var/lib/maas",
		BindConfigDir: dnsconfig.DefaultConfigDir,
		OptionsFile:   dnsconfig.DefaultOptionsFile,
		LocalConfFile: dnsconfig.DefaultLocalConfFile,

		ServiceUser:  "maas",
		ServiceGroup: "maas",
		SyslogUser:   "syslog",
		SyslogGroup:  "syslog",
		RootGroup:    "root",
		BindGroup:    "bind",

		Commands: Commands{
			GenerateNamedConf: []string{"maas-region-admin", "get-named-conf", "--edit"},
			EditNamedOptions:  []string{"maas-region-admin", "edit-named-options"},
			SetupDNS:          []string{"maas-region-admin", "setup-dns"},
			RestartDNS:        []string{"invoke-rc.d", "bind9", "restart"},
		},
	}
}

// Load returns Default overlaid with the YAML file at path. A missing file
// leaves the defaults standing.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) SecretFile() string { return filepath.Join(c.DataDir, "secret") }
func (c *Config) IDFile() string     { return filepath.Join(c.DataDir, "maas_id") }

func (c *Config) NamedConf() string {
	return filepath.Join(c.BindConfigDir, dnsconfig.NamedConfName)
}

func (c *Config) OptionsInside() string {
	return filepath.Join(c.BindConfigDir, dnsconfig.OptionsInsideName)
}

func (c *Config) RNDCConf() string {
	return filepath.Join(c.BindConfigDir, dnsconfig.RNDCConfName)
}

func (c *Config) NamedRNDCConf() string {
	return filepath.Join(c.BindConfigDir, dnsconfig.NamedRNDCConfName)
}
