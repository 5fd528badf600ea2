package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"eventlisting/internal/domain"
)

var styleIdentifier = regexp.MustCompile(`^[a-z0-9_-]+$`)

// NamespaceConfig is one entry of the namespaces file.
type NamespaceConfig struct {
	Namespace   string   `yaml:"namespace"`
	AppTitle    string   `yaml:"app_title"`
	LatestFirst bool     `yaml:"latest_first"`
	Styles      []string `yaml:"styles"`
}

// NamespacesFile is the top-level shape of the namespaces YAML file:
//
//	namespaces:
//	  - namespace: events
//	    app_title: Events
//	    latest_first: false
//	    styles: [compact, teaser]
type NamespacesFile struct {
	Namespaces []NamespaceConfig `yaml:"namespaces"`
}

// LoadNamespaces reads and validates the namespaces file at path.
func LoadNamespaces(path string) (domain.Namespaces, error) {
	if path == "" {
		return nil, errors.New("namespaces path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read namespaces file: %w", err)
	}
	return ParseNamespaces(data)
}

// ParseNamespaces decodes YAML namespace configuration. Style identifiers are
// checked here so plugins never see an unknown style at runtime.
func ParseNamespaces(data []byte) (domain.Namespaces, error) {
	var file NamespacesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse namespaces: %w", err)
	}
	if len(file.Namespaces) == 0 {
		return nil, errors.New("at least one namespace must be configured")
	}

	out := make(domain.Namespaces, len(file.Namespaces))
	for i, nc := range file.Namespaces {
		if nc.Namespace == "" {
			return nil, fmt.Errorf("namespace #%d: name is required", i+1)
		}
		if _, dup := out[nc.Namespace]; dup {
			return nil, fmt.Errorf("namespace %q: defined twice", nc.Namespace)
		}
		styles := []string{domain.StyleStandard}
		seen := map[string]struct{}{domain.StyleStandard: {}}
		for _, s := range nc.Styles {
			if !styleIdentifier.MatchString(s) {
				return nil, fmt.Errorf("namespace %q: invalid style identifier %q", nc.Namespace, s)
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			styles = append(styles, s)
		}
		title := nc.AppTitle
		if title == "" {
			title = nc.Namespace
		}
		out[nc.Namespace] = &domain.Namespace{
			Name:        nc.Namespace,
			AppTitle:    title,
			LatestFirst: nc.LatestFirst,
			Styles:      styles,
		}
	}
	return out, nil
}
