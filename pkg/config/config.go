// Package config loads the flux-mini client configuration: the set of
// resource-manager nodes the CLI can submit to, with optional embedded
// client certificates per node.
package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultURI is the local broker socket used when neither a configuration
// file nor FLUX_URI names a resource manager.
const DefaultURI = "unix:///run/flux/local"

// ClientConfig represents the client-side configuration with multiple nodes
type ClientConfig struct {
	Version string           `yaml:"version"`
	Nodes   map[string]*Node `yaml:"nodes"`
}

// Node represents a single resource-manager endpoint. Certificates are
// embedded PEM; a node with no certificates is reached without TLS
// (the local broker case).
type Node struct {
	Address string `yaml:"address"`
	Cert    string `yaml:"cert"`
	Key     string `yaml:"key"`
	CA      string `yaml:"ca"`
}

// HasTLS reports whether the node carries embedded client certificates
func (n *Node) HasTLS() bool {
	return n.Cert != "" || n.Key != "" || n.CA != ""
}

// GetClientTLSConfig builds a TLS configuration from the node's embedded PEM
func (n *Node) GetClientTLSConfig() (*tls.Config, error) {
	if n.Cert == "" || n.Key == "" || n.CA == "" {
		return nil, fmt.Errorf("client certificates are not fully configured for node")
	}

	clientCert, err := tls.X509KeyPair([]byte(n.Cert), []byte(n.Key))
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM([]byte(n.CA)); !ok {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      caCertPool,
		MinVersion:   tls.VersionTLS13,
	}, nil
}

// LoadClientConfig loads the client configuration from the specified file.
// When configPath is empty, standard locations are searched; when no file
// exists at all, a single default node pointing at FLUX_URI (or the local
// broker socket) is synthesized so the CLI works without any file.
func LoadClientConfig(configPath string) (*ClientConfig, error) {
	explicit := configPath != ""
	if configPath == "" {
		configPath = findClientConfig()
		if configPath == "" {
			return defaultClientConfig(), nil
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("client configuration file not found: %s", configPath)
		}
		return defaultClientConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client config file %s: %w", configPath, err)
	}

	var config ClientConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}

	if len(config.Nodes) == 0 {
		return nil, fmt.Errorf("no nodes configured in %s", configPath)
	}

	return &config, nil
}

// GetNode retrieves the configuration for a named resource-manager node.
// FLUX_URI overrides the configured address: a flux instance always
// advertises its own broker endpoint through the environment.
func (c *ClientConfig) GetNode(nodeName string) (*Node, error) {
	if nodeName == "" {
		nodeName = "default"
	}

	node, exists := c.Nodes[nodeName]
	if !exists {
		return nil, fmt.Errorf("node '%s' not found in configuration", nodeName)
	}

	if uri := os.Getenv("FLUX_URI"); uri != "" {
		override := *node
		override.Address = uri
		return &override, nil
	}

	return node, nil
}

// ListNodes returns the configured node names
func (c *ClientConfig) ListNodes() []string {
	names := make([]string, 0, len(c.Nodes))
	for name := range c.Nodes {
		names = append(names, name)
	}
	return names
}

func defaultClientConfig() *ClientConfig {
	address := os.Getenv("FLUX_URI")
	if address == "" {
		address = DefaultURI
	}
	return &ClientConfig{
		Nodes: map[string]*Node{
			"default": {Address: address},
		},
	}
}

// findClientConfig searches for the client configuration file in standard
// locations. FLUX_CONFIG wins when it points at an existing file.
func findClientConfig() string {
	if envPath := os.Getenv("FLUX_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	locations := []string{
		"./flux-config.yml",
		"./config/flux-config.yml",
		filepath.Join(os.Getenv("HOME"), ".flux", "flux-config.yml"),
		"/etc/flux/flux-config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
