package rbac

// Tiers.
const (
	TierAnonymous  = "anonymous"
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
	TierAdmin      = "admin"
)

// Permissions.
const (
	PermConvertSingle    = "convert:single"
	PermConvertBulk      = "convert:bulk"
	PermConversionsView  = "conversions:view"
	PermPackagesDownload = "packages:download"
	PermPackagesCleanup  = "packages:cleanup"
)

var TierPermissions = map[string][]string{
	TierAnonymous: {
		PermConvertSingle,
	},
	TierFree: {
		PermConvertSingle,
		PermConversionsView,
		PermPackagesDownload,
	},
	TierPro: {
		"convert:*",
		PermConversionsView,
		PermPackagesDownload,
	},
	TierEnterprise: {
		"convert:*",
		PermConversionsView,
		PermPackagesDownload,
	},
	TierAdmin: {
		"*",
	},
}

// KnownTier reports whether tier has a permission set.
func KnownTier(tier string) bool {
	_, ok := TierPermissions[tier]
	return ok
}
