package config

const (
	DefaultProject       = "gos"
	DefaultBranch        = "feature/gos-scaffold"
	DefaultBaseBranch    = "main"
	DefaultTargetDir     = "gos"
	DefaultCommitMessage = "chore: apply GOS project scaffold"
	DefaultBoltURI       = "bolt://localhost:7687"
	DefaultGraphUser     = "neo4j"

	// DefaultGraphPassword is a dev-only stand-in, not a secret.
	DefaultGraphPassword = "gos-dev-password"
)

// ApplyDefaults fills in default values for optional fields that were not
// specified in the YAML. It is called after parsing and before validation.
func ApplyDefaults(cfg *Config) {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "gosctl/v1"
	}
	if cfg.Kind == "" {
		cfg.Kind = "Scaffold"
	}
	if cfg.Project == "" {
		cfg.Project = DefaultProject
	}
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	if cfg.TargetDir == "" {
		cfg.TargetDir = DefaultTargetDir
	}
	if cfg.CommitMessage == "" {
		cfg.CommitMessage = DefaultCommitMessage
	}
	if cfg.Graph.BoltURI == "" {
		cfg.Graph.BoltURI = DefaultBoltURI
	}
	if cfg.Graph.User == "" {
		cfg.Graph.User = DefaultGraphUser
	}
	if cfg.Graph.Password == "" {
		cfg.Graph.Password = DefaultGraphPassword
	}
}
