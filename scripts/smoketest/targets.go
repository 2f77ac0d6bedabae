package main

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	ServiceResumeAnalyzer = "resume-analyzer"
	ServiceProfile        = "profile-service"
	ServiceGateway        = "api-gateway"
)

// Targets lists the base URLs of the services under test.
type Targets struct {
	Services map[string]string `yaml:"services"`
	UserID   string            `yaml:"user_id"`
}

// serviceOrder fixes the order services are checked and reported in.
var serviceOrder = []string{ServiceGateway, ServiceProfile, ServiceResumeAnalyzer}

func DefaultTargets() *Targets {
	return &Targets{
		Services: map[string]string{
			ServiceResumeAnalyzer: "http://localhost:8003",
			ServiceProfile:        "http://localhost:8006",
			ServiceGateway:        "http://localhost:8000",
		},
		UserID: "test-user-12345",
	}
}

// LoadTargets reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadTargets(path string) (*Targets, error) {
	targets := DefaultTargets()
	if path == "" {
		return targets, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading targets file: %w", err)
	}

	var raw Targets
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing targets file: %w", err)
	}

	for name, url := range raw.Services {
		targets.Services[name] = url
	}
	if raw.UserID != "" {
		targets.UserID = raw.UserID
	}

	return targets, nil
}

// Ordered returns the configured services, known ones first.
func (t *Targets) Ordered() []string {
	var names, extra []string
	for _, name := range serviceOrder {
		if _, ok := t.Services[name]; ok {
			names = append(names, name)
		}
	}
	for name := range t.Services {
		if !slices.Contains(serviceOrder, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}
