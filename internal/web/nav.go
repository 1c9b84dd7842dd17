package web

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rentdesk/pkg/validator"
)

//go:embed nav.yaml
var navYAML []byte

var ErrInvalidNav = errors.New("invalid navigation definition")

type NavItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
	Icon  string `yaml:"icon"`
}

type NavGroup struct {
	Name  string    `yaml:"name"`
	Items []NavItem `yaml:"items"`
}

// DefaultNav parses the embedded navigation.
func DefaultNav() ([]NavGroup, error) {
	return ParseNav(navYAML)
}

// ParseNav decodes a navigation document. Every item needs a label and an
// absolute path.
func ParseNav(data []byte) ([]NavGroup, error) {
	var doc struct {
		Groups []NavGroup `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidNav, err)
	}
	var rules []validator.Rule
	for i, grp := range doc.Groups {
		for j, item := range grp.Items {
			field := fmt.Sprintf("groups[%d].items[%d]", i, j)
			rules = append(rules,
				validator.RequiredString(field+".label", item.Label),
				validator.StartsWith(field+".path", item.Path, "/"),
			)
		}
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, errors.Join(ErrInvalidNav, err)
	}
	return doc.Groups, nil
}

// isActivePath reports whether the nav item at itemPath covers current.
// The root only matches itself.
func isActivePath(itemPath, current string) bool {
	if itemPath == "" || current == "" {
		return false
	}
	if itemPath == current {
		return true
	}
	if itemPath == "/" {
		return false
	}
	return strings.HasPrefix(current, itemPath+"/")
}
