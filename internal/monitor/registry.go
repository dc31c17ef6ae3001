package monitor

import (
	"fmt"
	"net/url"
	"strings"
)

// Service describes a service eligible for health checking
type Service struct {
	Name        string
	Icon        string
	Endpoint    *url.URL
	Description string
}

// NewService validates the endpoint and builds a service descriptor.
func NewService(name, icon, endpoint, description string) (Service, error) {
	if strings.TrimSpace(name) == "" {
		return Service{}, fmt.Errorf("service name is required")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return Service{}, fmt.Errorf("service '%s': %w: %v", name, ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Service{}, fmt.Errorf("service '%s': %w: unsupported scheme %q", name, ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return Service{}, fmt.Errorf("service '%s': %w: missing host", name, ErrInvalidEndpoint)
	}

	return Service{
		Name:        name,
		Icon:        icon,
		Endpoint:    u,
		Description: description,
	}, nil
}

// URL returns the endpoint as a string
func (s Service) URL() string {
	if s.Endpoint == nil {
		return ""
	}
	return s.Endpoint.String()
}

// Definition is the raw form of a registry entry before validation
type Definition struct {
	Name        string
	Icon        string
	Endpoint    string
	Description string
}

// DefaultDefinitions returns the compiled-in registry entries
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: "CERBERUS", Icon: "🛡️", Endpoint: "http://localhost:8080/health", Description: "API Gateway (L2)"},
		{Name: "KRONOS", Icon: "⏰", Endpoint: "http://localhost:3000/health", Description: "Task Scheduler"},
		{Name: "HERMES", Icon: "📨", Endpoint: "http://localhost:50051", Description: "Event Bus (gRPC)"},
		{Name: "VORTEX", Icon: "🧠", Endpoint: "http://localhost:8000/health", Description: "AI Engine"},
		{Name: "OPTICUS", Icon: "👁️", Endpoint: "http://localhost:8100/health", Description: "Vision Pipeline"},
	}
}

// NewRegistry validates every definition, failing on the first malformed entry
func NewRegistry(defs []Definition) ([]Service, error) {
	services := make([]Service, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		key := strings.ToLower(def.Name)
		if seen[key] {
			return nil, fmt.Errorf("service '%s' is defined more than once", def.Name)
		}
		seen[key] = true

		svc, err := NewService(def.Name, def.Icon, def.Endpoint, def.Description)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

// DefaultRegistry returns the five compiled-in services
func DefaultRegistry() []Service {
	services, err := NewRegistry(DefaultDefinitions())
	if err != nil {
		panic(err)
	}
	return services
}

// Filter returns the services whose name contains filter, ignoring case,
// in registry order. An empty filter matches every service.
func Filter(services []Service, filter string) []Service {
	needle := strings.ToLower(filter)
	out := make([]Service, 0, len(services))
	for _, svc := range services {
		if needle == "" || strings.Contains(strings.ToLower(svc.Name), needle) {
			out = append(out, svc)
		}
	}
	return out
}
