package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// RouteClass is the access requirement attached to a route.
type RouteClass string

const (
	ClassPublic        RouteClass = "public"
	ClassAuthenticated RouteClass = "authenticated"
	ClassAdmin         RouteClass = "admin"
)

// RouteContext decides how a denial is reported: pages redirect, APIs answer with a status.
type RouteContext string

const (
	ContextPage RouteContext = "page"
	ContextAPI  RouteContext = "api"
)

// RouteRule binds one path to a class and a context.
type RouteRule struct {
	Path    string       `yaml:"path" json:"path"`
	Class   RouteClass   `yaml:"class" json:"class"`
	Context RouteContext `yaml:"context" json:"context"`
}

// PolicyTable is the gate's route policy.
type PolicyTable struct {
	LoginPath   string      `yaml:"login_path" json:"login_path"`
	LandingPath string      `yaml:"landing_path" json:"landing_path"`
	Routes      []RouteRule `yaml:"routes" json:"routes"`

	index map[string]RouteRule
}

// DefaultPolicy mirrors the dashboard's pages and API endpoints.
func DefaultPolicy() *PolicyTable {
	p := &PolicyTable{
		LoginPath:   "/login",
		LandingPath: "/about",
		Routes: []RouteRule{
			{Path: "/login", Class: ClassPublic, Context: ContextPage},
			{Path: "/about", Class: ClassAuthenticated, Context: ContextPage},
			{Path: "/joke", Class: ClassAuthenticated, Context: ContextPage},
			{Path: "/employeeTable", Class: ClassAuthenticated, Context: ContextPage},
			{Path: "/employeeCard", Class: ClassAuthenticated, Context: ContextPage},
			{Path: "/manageUser", Class: ClassAdmin, Context: ContextPage},
			{Path: "/api/login", Class: ClassPublic, Context: ContextAPI},
			{Path: "/api/logout", Class: ClassPublic, Context: ContextAPI},
			{Path: "/api/session", Class: ClassAuthenticated, Context: ContextAPI},
			{Path: "/api/employees", Class: ClassAuthenticated, Context: ContextAPI},
			{Path: "/api/joke", Class: ClassAuthenticated, Context: ContextAPI},
			{Path: "/api/users", Class: ClassAdmin, Context: ContextAPI},
		},
	}
	if err := p.Validate(); err != nil {
		panic(err)
	}
	return p
}

// LoadPolicy reads a policy table from a YAML, JSON or TOML file.
// An empty path yields the default table.
func LoadPolicy(path string) (*PolicyTable, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPolicy(), nil
	}
	var p PolicyTable
	if err := cleanenv.ReadConfig(path, &p); err != nil {
		return nil, fmt.Errorf("read access policy %s: %w", path, err)
	}
	if p.LoginPath == "" {
		p.LoginPath = "/login"
	}
	if p.LandingPath == "" {
		p.LandingPath = "/about"
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks every rule and builds the lookup index.
func (p *PolicyTable) Validate() error {
	var errs []error
	if !strings.HasPrefix(p.LoginPath, "/") {
		errs = append(errs, fmt.Errorf("login_path %q must start with /", p.LoginPath))
	}
	if !strings.HasPrefix(p.LandingPath, "/") {
		errs = append(errs, fmt.Errorf("landing_path %q must start with /", p.LandingPath))
	}

	index := make(map[string]RouteRule, len(p.Routes))
	for _, rule := range p.Routes {
		if !strings.HasPrefix(rule.Path, "/") {
			errs = append(errs, fmt.Errorf("route %q must start with /", rule.Path))
			continue
		}
		switch rule.Class {
		case ClassPublic, ClassAuthenticated, ClassAdmin:
		default:
			errs = append(errs, fmt.Errorf("route %s: unknown class %q", rule.Path, rule.Class))
		}
		switch rule.Context {
		case ContextPage, ContextAPI:
		default:
			errs = append(errs, fmt.Errorf("route %s: unknown context %q", rule.Path, rule.Context))
		}
		key := normalizePath(rule.Path)
		if _, dup := index[key]; dup {
			errs = append(errs, fmt.Errorf("route %s declared twice", rule.Path))
		}
		index[key] = rule
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid access policy: %w", err)
	}
	p.index = index
	return nil
}

// Lookup returns the rule for a request path. Matching ignores case and a
// trailing slash, the same way the router resolves routes.
func (p *PolicyTable) Lookup(path string) (RouteRule, bool) {
	rule, ok := p.index[normalizePath(path)]
	return rule, ok
}

func normalizePath(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return strings.ToLower(path)
}
