package useraccess

import (
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"
)

// maxInheritanceDepth caps role nesting so a malformed catalog cannot
// recurse unboundedly.
const maxInheritanceDepth = 10

// Role is one entry of the role catalog: a set of directly granted
// permissions plus optional inheritance from other roles.
type Role struct {
	Permissions []string `yaml:"permissions"`
	Inherits    []string `yaml:"inherits"`
}

type catalogFile struct {
	Roles map[string]Role `yaml:"roles"`
}

// Catalog holds the resolved role catalog. Effective permissions, including
// everything reachable through inheritance, are precomputed at load time so
// runtime lookups never walk the hierarchy. The catalog is immutable after
// LoadCatalog returns.
type Catalog struct {
	effective map[string][]string
}

// LoadCatalog reads and resolves a YAML role catalog from fsys.
// It fails on unknown inherited roles and on inheritance cycles.
func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoleCatalogUnreadable, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoleCatalogUnreadable, err)
	}
	if len(file.Roles) == 0 {
		return nil, ErrRoleCatalogEmpty
	}

	for name, role := range file.Roles {
		for _, parent := range role.Inherits {
			if _, ok := file.Roles[parent]; !ok {
				return nil, fmt.Errorf("%w: role %q inherits unknown role %q", ErrRoleCatalogInvalid, name, parent)
			}
		}
	}

	effective := make(map[string][]string, len(file.Roles))
	for name := range file.Roles {
		perms, err := collectPermissions(name, file.Roles, map[string]bool{}, 0)
		if err != nil {
			return nil, err
		}
		slices.Sort(perms)
		effective[name] = slices.Compact(perms)
	}

	return &Catalog{effective: effective}, nil
}

// EffectivePermissions returns the full permission set of a role, inherited
// permissions included, sorted and deduplicated.
func (c *Catalog) EffectivePermissions(role string) ([]string, error) {
	perms, ok := c.effective[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out, nil
}

// HasRole reports whether the catalog defines the role.
func (c *Catalog) HasRole(role string) bool {
	_, ok := c.effective[role]
	return ok
}

// Roles returns all defined role names, sorted.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.effective))
	for name := range c.effective {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func collectPermissions(name string, roles map[string]Role, visiting map[string]bool, depth int) ([]string, error) {
	if depth > maxInheritanceDepth {
		return nil, fmt.Errorf("%w: inheritance deeper than %d at role %q", ErrRoleCatalogInvalid, maxInheritanceDepth, name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("%w: inheritance cycle through role %q", ErrRoleCatalogInvalid, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	role := roles[name]
	result := make([]string, len(role.Permissions))
	copy(result, role.Permissions)

	for _, parent := range role.Inherits {
		inherited, err := collectPermissions(parent, roles, visiting, depth+1)
		if err != nil {
			return nil, err
		}
		result = append(result, inherited...)
	}
	return result, nil
}
