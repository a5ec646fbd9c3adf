package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"autocare/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes who may call a route. Path is a chi route pattern, or a prefix when it ends
// with "*". Method "*" matches any method.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Optional    bool     `json:"optional"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func (p Permission) matchesMethod(method string) bool {
	return p.Method == constant.Asterix || strings.EqualFold(p.Method, method)
}

func (p Permission) prefix() (string, bool) {
	return strings.CutSuffix(p.Path, constant.Asterix)
}

// FindPermissions returns the entry for path and method. An exact path wins; otherwise the longest
// matching prefix entry is used. The zero Permission is returned when nothing matches.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	var (
		found   Permission
		longest = -1
	)

	for _, endpoint := range r.Endpoints {
		if !endpoint.matchesMethod(method) {
			continue
		}

		if endpoint.Path == path {
			return endpoint
		}

		prefix, ok := endpoint.prefix()
		if !ok || !strings.HasPrefix(path, prefix) || len(prefix) <= longest {
			continue
		}

		found, longest = endpoint, len(prefix)
	}

	return found
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
