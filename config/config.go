// Package config loads the persistence-unit configuration of the ormxml
// command from ormxml.yaml and ORMXML_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/ormxml/resource"
	"github.com/dhamidi/ormxml/typedesc"
	"github.com/dhamidi/ormxml/xmlproc"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("ormxml.config")

const (
	configName = "ormxml"
	envPrefix  = "ORMXML"
)

// Config describes one persistence unit: where its mapping documents and
// classes live, its unit-wide defaults and the type descriptors it knows.
type Config struct {
	MappingFiles     []string              `mapstructure:"mapping_files"`
	MappingResources []string              `mapstructure:"mapping_resources"`
	Classpath        []string              `mapstructure:"classpath"`
	PersistenceUnit  PersistenceUnitConfig `mapstructure:"persistence_unit"`
	Types            TypesConfig           `mapstructure:"types"`
}

// PersistenceUnitConfig seeds the persistence-unit metadata before any
// mapping document is read. Documents may still add to it.
type PersistenceUnitConfig struct {
	XmlComplete       bool   `mapstructure:"xml_complete"`
	Access            string `mapstructure:"access"`
	Schema            string `mapstructure:"schema"`
	Catalog           string `mapstructure:"catalog"`
	CascadePersist    bool   `mapstructure:"cascade_persist"`
	QuotedIdentifiers bool   `mapstructure:"quoted_identifiers"`
}

// TypesConfig lists type descriptor implementations. Class names are kept
// as list values since viper folds map keys to lower case.
type TypesConfig struct {
	UserTypes []TypeEntry `mapstructure:"user_types"`
	JavaTypes []TypeEntry `mapstructure:"java_types"`
	JdbcTypes []JdbcEntry `mapstructure:"jdbc_types"`
}

// TypeEntry maps a descriptor class to the Java type it reports.
type TypeEntry struct {
	Class   string `mapstructure:"class"`
	Returns string `mapstructure:"returns"`
}

// JdbcEntry maps a JdbcType class to a java.sql.Types name such as VARCHAR.
type JdbcEntry struct {
	Class   string `mapstructure:"class"`
	SqlType string `mapstructure:"sql_type"`
}

// Load reads the configuration. An empty path searches ormxml.yaml in the
// working directory; a missing file there is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("persistence_unit.xml_complete", false)
	v.SetDefault("persistence_unit.cascade_persist", false)
	v.SetDefault("persistence_unit.quoted_identifiers", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Debug("no ormxml.yaml found, using defaults")
	} else {
		log.Infof("using config file %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if _, err := xmlproc.ParseAccessType(cfg.PersistenceUnit.Access); err != nil {
		return fmt.Errorf("persistence_unit.access: %w", err)
	}
	for _, e := range cfg.Types.UserTypes {
		if e.Class == "" || e.Returns == "" {
			return fmt.Errorf("types.user_types: entry needs class and returns, got %+v", e)
		}
	}
	for _, e := range cfg.Types.JavaTypes {
		if e.Class == "" || e.Returns == "" {
			return fmt.Errorf("types.java_types: entry needs class and returns, got %+v", e)
		}
	}
	for _, e := range cfg.Types.JdbcTypes {
		if _, ok := typedesc.SqlTypeCode(e.SqlType); !ok || e.Class == "" {
			return fmt.Errorf("types.jdbc_types: unknown sql type %q for %q", e.SqlType, e.Class)
		}
	}
	return nil
}

// PersistenceUnitMetadata returns unit metadata seeded from the config.
func (c *Config) PersistenceUnitMetadata() *xmlproc.PersistenceUnitMetadata {
	pu := xmlproc.NewPersistenceUnitMetadata()
	p := c.PersistenceUnit
	pu.SetXmlComplete(p.XmlComplete)
	pu.SetQuotedIdentifiers(p.QuotedIdentifiers)
	pu.SetSchema(p.Schema)
	pu.SetCatalog(p.Catalog)
	if access, _ := xmlproc.ParseAccessType(p.Access); access != "" {
		pu.SetAccessType(access)
	}
	if p.CascadePersist {
		pu.AddCascadeType(xmlproc.CascadePersist)
	}
	return pu
}

// TypeRegistry returns the built-in descriptors plus the configured ones.
func (c *Config) TypeRegistry() *typedesc.Registry {
	r := typedesc.NewRegistry()
	for _, e := range c.Types.UserTypes {
		r.RegisterUserType(e.Class, e.Returns)
	}
	for _, e := range c.Types.JavaTypes {
		r.RegisterJavaType(e.Class, e.Returns)
	}
	for _, e := range c.Types.JdbcTypes {
		code, _ := typedesc.SqlTypeCode(e.SqlType)
		javaType, _ := typedesc.RecommendedJavaType(code)
		r.RegisterJdbcType(e.Class, typedesc.JdbcTypeDescriptor{Code: code, RecommendedJavaType: javaType})
	}
	return r
}

// Locator returns a resource locator over the configured classpath.
func (c *Config) Locator() *resource.Locator {
	return resource.NewLocator(c.Classpath...)
}
