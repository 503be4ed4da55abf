package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/config"
	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/spf13/pflag"
)

// themeFlag is an optional --theme value. It accepts enum values or labels.
type themeFlag struct {
	theme *domain.Theme
}

var _ pflag.Value = (*themeFlag)(nil)

func (f *themeFlag) String() string {
	if f.theme == nil {
		return ""
	}
	return string(*f.theme)
}

func (f *themeFlag) Set(s string) error {
	t, err := domain.ParseTheme(s)
	if err != nil {
		return err
	}
	f.theme = &t
	return nil
}

func (f *themeFlag) Type() string { return "theme" }

// backendFlag validates --backend at parse time.
type backendFlag struct {
	target *config.Backend
}

var _ pflag.Value = (*backendFlag)(nil)

func newBackendFlag(target *config.Backend) *backendFlag {
	return &backendFlag{target: target}
}

func (f *backendFlag) String() string {
	if f.target == nil {
		return ""
	}
	return string(*f.target)
}

func (f *backendFlag) Set(s string) error {
	b := config.Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case config.BackendSQLite, config.BackendMemory, config.BackendRedis:
		*f.target = b
		return nil
	}
	return fmt.Errorf("must be one of sqlite, memory, redis")
}

func (f *backendFlag) Type() string { return "backend" }
