package settings

import (
	"fmt"
	"sort"
)

type Module string

type Action string

const (
	ModuleApplicants Module = "applicants"
	ModuleUsers      Module = "users"
	ModuleSettings   Module = "settings"
	ModuleReports    Module = "reports"
	ModuleInterviews Module = "interviews"

	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionEvaluate Action = "evaluate"
	ActionExport   Action = "export"
)

// Catalogue lists the actions each module accepts.
var Catalogue = map[Module][]Action{
	ModuleApplicants: {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionEvaluate},
	ModuleUsers:      {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
	ModuleSettings:   {ActionRead, ActionUpdate},
	ModuleReports:    {ActionRead, ActionExport},
	ModuleInterviews: {ActionCreate, ActionRead, ActionUpdate, ActionDelete},
}

// Permissions is a role's granted actions per module.
type Permissions map[Module][]Action

func (p Permissions) Validate() error {
	for module, actions := range p {
		allowed, ok := Catalogue[module]
		if !ok {
			return fmt.Errorf("%w: unknown permission module %q", ErrInvalid, module)
		}
		for _, a := range actions {
			if !containsAction(allowed, a) {
				return fmt.Errorf("%w: action %q not available for module %q", ErrInvalid, a, module)
			}
		}
	}
	return nil
}

func (p Permissions) Allows(module Module, action Action) bool {
	return containsAction(p[module], action)
}

// Normalize drops duplicate actions and sorts them so stored rows compare equal.
func (p Permissions) Normalize() Permissions {
	out := make(Permissions, len(p))
	for module, actions := range p {
		seen := make(map[Action]struct{}, len(actions))
		var list []Action
		for _, a := range actions {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			list = append(list, a)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		if len(list) > 0 {
			out[module] = list
		}
	}
	return out
}

// FullAccess grants every action in the catalogue.
func FullAccess() Permissions {
	out := make(Permissions, len(Catalogue))
	for module, actions := range Catalogue {
		out[module] = append([]Action(nil), actions...)
	}
	return out.Normalize()
}

func containsAction(list []Action, a Action) bool {
	for _, v := range list {
		if v == a {
			return true
		}
	}
	return false
}
