package domain

// Group is a named role bucket (administrator, user, ...) that grants
// resource permissions to its members through ResourceGroup links.
type Group struct {
	GroupID string `json:"groupID"`
	Name    string `json:"name"`
}

// Resource is a named capability that can be granted to a group.
type Resource struct {
	ResourceID string `json:"resourceID"`
	Name       string `json:"name"`
}

// ResourceGroup links a resource to a group.
type ResourceGroup struct {
	ResourceGroupID string
	ResourceID      string
	GroupID         string
}
