package release

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/conn-castle/release-layer/internal/hosting"
	"github.com/conn-castle/release-layer/internal/messages"
)

// Deps carries the collaborators a strategy factory needs.
type Deps struct {
	Host    hosting.Host
	Logger  *zap.Logger
	Options Options
}

// Factory builds a release strategy instance for one release cycle.
type Factory func(deps Deps) (Strategy, error)

var factories = map[string]Factory{}

// Register installs a strategy factory under name, replacing any previous
// registration.
func Register(name string, factory Factory) {
	factories[name] = factory
}

// New builds the named strategy.
func New(name string, deps Deps) (Strategy, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf(messages.ReleaseUnknownStrategyFmt, name)
	}
	return factory(deps)
}

// Known reports whether name is a registered strategy.
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("manifest", func(deps Deps) (Strategy, error) {
		return NewManifestStrategy(deps.Host, deps.Logger, deps.Options)
	})
}
