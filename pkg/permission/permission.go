package permission

import (
	"fmt"
	"slices"

	"banner-chat-be/internal/entity"
)

// HasPerm reports whether the user carries the given capability string.
// Superusers hold every permission implicitly.
func HasPerm(user *entity.User, perm string) bool {
	if user == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return slices.Contains(user.Permissions, perm)
}

// CanModify reports whether the user may change or add items in a module.
func CanModify(user *entity.User, app, module string) bool {
	return HasPerm(user, fmt.Sprintf("%s.change_%s", app, module)) ||
		HasPerm(user, fmt.Sprintf("%s.add_%s", app, module))
}

// CanDelete reports whether the user may delete items in a module.
func CanDelete(user *entity.User, app, module string) bool {
	return HasPerm(user, fmt.Sprintf("%s.delete_%s", app, module))
}
