package role

import (
	"fmt"
	"strings"

	"siaugesmat-entrypoint/config"
)

// Role selects which long-running service this container instance becomes.
// The set is closed: anything outside it is a configuration error.
type Role string

const (
	Web       Role = "web"
	Worker    Role = "worker"
	Scheduler Role = "scheduler"
)

// All returns the accepted role set, in a stable order for diagnostics.
func All() []Role {
	return []Role{Web, Worker, Scheduler}
}

// Parse validates a raw CONTAINER_ROLE value. The returned error names the
// offending value and the accepted set.
func Parse(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case Web, Worker, Scheduler:
		return r, nil
	default:
		accepted := make([]string, 0, len(All()))
		for _, a := range All() {
			accepted = append(accepted, string(a))
		}
		return "", fmt.Errorf("unrecognized CONTAINER_ROLE %q (accepted values: %s)", raw, strings.Join(accepted, ", "))
	}
}

// Dependency identifies a service the role must be able to reach before launch.
type Dependency string

const (
	Database Dependency = "database"
	Cache    Dependency = "cache"
)

// ParseDependency validates a dependency name from a flag or env value.
func ParseDependency(raw string) (Dependency, error) {
	switch d := Dependency(strings.ToLower(strings.TrimSpace(raw))); d {
	case Database, Cache:
		return d, nil
	default:
		return "", fmt.Errorf("unknown dependency %q (accepted values: %s, %s)", raw, Database, Cache)
	}
}

// LaunchSpec is the command a role hands its process over to.
// Args includes argv[0].
type LaunchSpec struct {
	Path string
	Args []string
}

// String renders the spec the way it would appear on a command line.
func (s LaunchSpec) String() string {
	return strings.Join(s.Args, " ")
}

// Dependencies returns the readiness checks required before launch, in the
// order they must run. The worker's database wait is a revision toggle, not
// a hidden default.
func (r Role) Dependencies(cfg *config.Config) []Dependency {
	switch r {
	case Web:
		return []Dependency{Database, Cache}
	case Worker:
		deps := []Dependency{Cache}
		if cfg.WorkerWaitsForDB {
			deps = append(deps, Database)
		}
		return deps
	case Scheduler:
		return []Dependency{Cache}
	}
	return nil
}

// Launch returns the role's launch command. The commands mirror the
// deployment manifests verbatim: the entrypoint does not own or modify the
// processes it starts.
func (r Role) Launch(cfg *config.Config) LaunchSpec {
	switch r {
	case Web:
		return LaunchSpec{
			Path: "uvicorn",
			Args: []string{"uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8080", "--workers", "4"},
		}
	case Worker:
		args := []string{"celery", "-A", "app.core.celery_app", "worker", "--loglevel=info", "--concurrency=2"}
		if cfg.WorkerEventsEnabled {
			args = append(args, "-E")
		}
		return LaunchSpec{Path: "celery", Args: args}
	case Scheduler:
		return LaunchSpec{
			Path: "celery",
			Args: []string{"celery", "-A", "app.core.celery_app", "beat", "--loglevel=info"},
		}
	}
	return LaunchSpec{}
}
