package user

type Permission string

const (
	// Self service
	PermissionDashboardView    Permission = "dashboard.view"
	PermissionNotificationView Permission = "notification.view"

	// Requests
	PermissionRequestCreate  Permission = "request.create"
	PermissionRequestViewOwn Permission = "request.view_own"
	PermissionRequestReview  Permission = "request.review"

	// Directory
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionDashboardView,
		PermissionNotificationView,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
	},
	RoleDirectManager: {
		PermissionDashboardView,
		PermissionNotificationView,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestReview,
	},
	RoleHRManager: {
		// HR also owns the user directory
		PermissionDashboardView,
		PermissionNotificationView,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestReview,
		PermissionUserManage,
	},
	RoleDean: {
		PermissionDashboardView,
		PermissionNotificationView,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestReview,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
