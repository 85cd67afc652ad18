// Package recruitapi holds the typed wrappers around the backend endpoints.
// Every call goes through apiclient.Client, so the bearer token and the 401
// handling apply uniformly.
package recruitapi

import (
	"strconv"
	"strings"

	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
)

var (
	_ ports.AuthAPI         = (*Auth)(nil)
	_ ports.JobsAPI         = (*Jobs)(nil)
	_ ports.ApplicationsAPI = (*Applications)(nil)
	_ ports.StudentsAPI     = (*Students)(nil)
	_ ports.AIAPI           = (*AI)(nil)
)

// Prefixes are the controller base paths of the backend.
type Prefixes struct {
	Auth         string
	Jobs         string
	Applications string
	Students     string
	Files        string
	AI           string
}

// PrefixesFrom copies the prefixes out of the API configuration.
func PrefixesFrom(cfg config.APIConfig) Prefixes {
	return Prefixes{
		Auth:         cfg.AuthPrefix,
		Jobs:         cfg.JobsPrefix,
		Applications: cfg.ApplicationsPrefix,
		Students:     cfg.StudentsPrefix,
		Files:        cfg.FilesPrefix,
		AI:           cfg.AIPrefix,
	}
}

// API bundles one wrapper per endpoint group.
type API struct {
	Auth         *Auth
	Jobs         *Jobs
	Applications *Applications
	Students     *Students
	AI           *AI
}

// New wires every wrapper to c.
func New(c *apiclient.Client, p Prefixes) *API {
	return &API{
		Auth:         &Auth{c: c, prefix: clean(p.Auth)},
		Jobs:         &Jobs{c: c, prefix: clean(p.Jobs)},
		Applications: &Applications{c: c, prefix: clean(p.Applications)},
		Students:     &Students{c: c, prefix: clean(p.Students), files: clean(p.Files)},
		AI:           &AI{c: c, prefix: clean(p.AI)},
	}
}

func clean(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}

func id(v int64) string { return strconv.FormatInt(v, 10) }
