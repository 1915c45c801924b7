package changelog

// BumpType is the semver component a release increments
type BumpType string

// Bump types understood by the host
const (
	Major BumpType = "major"
	Minor BumpType = "minor"
	Patch BumpType = "patch"
	None  BumpType = "none"
)

// Release pairs a package with the bump a changeset asks for
type Release struct {
	Name string   `json:"name"`
	Type BumpType `json:"type"`
}

// Changeset defines a pending change as supplied by the host
type Changeset struct {
	ID       string    `json:"id"`
	Summary  string    `json:"summary"`
	Releases []Release `json:"releases"`
	Commit   string    `json:"commit,omitempty"`
}

// DependencyBump describes a package released only because a dependency changed
type DependencyBump struct {
	Name        string                 `json:"name"`
	Type        BumpType               `json:"type"`
	OldVersion  string                 `json:"oldVersion"`
	NewVersion  string                 `json:"newVersion"`
	Changesets  []string               `json:"changesets"`
	PackageJSON map[string]interface{} `json:"packageJson"`
	Dir         string                 `json:"dir"`
}
