// Package config defines the gosctl.yaml configuration model: the fixed
// branch/commit surface of the scaffold run and the handful of values
// interpolated into generated stubs.
package config

// Config is the parsed gosctl.yaml document.
type Config struct {
	APIVersion string `yaml:"apiVersion" json:"apiVersion"`
	Kind       string `yaml:"kind" json:"kind"`

	// Project is the human name interpolated into generated docs.
	Project string `yaml:"project" json:"project"`

	// Branch is the working branch the scaffold lands on; reused if it
	// already exists, created from HEAD otherwise.
	Branch string `yaml:"branch" json:"branch"`

	// BaseBranch is the PR target.
	BaseBranch string `yaml:"baseBranch" json:"baseBranch"`

	// TargetDir is the subdirectory of the repo the scaffold is applied
	// under. It must already exist; its absence is a precondition failure.
	TargetDir string `yaml:"targetDir" json:"targetDir"`

	// CommitMessage is the fixed message used when the staged tree differs
	// from HEAD.
	CommitMessage string `yaml:"commitMessage" json:"commitMessage"`

	Graph GraphConfig `yaml:"graph" json:"graph"`
}

// GraphConfig carries the Neo4j connection stub values. Password is a
// development-only placeholder written verbatim into the generated .env;
// it is never read from or written to a secret store.
type GraphConfig struct {
	BoltURI  string `yaml:"boltURI" json:"boltURI"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
}
