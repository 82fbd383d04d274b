package ciutil

import (
	"os"
)

// CI environment detection variables.
const (
	EnvCI               = "CI"
	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubWorkspace  = "GITHUB_WORKSPACE"
	EnvGitLabCI         = "GITLAB_CI"
	EnvGitLabProjectDir = "CI_PROJECT_DIR"
	EnvJenkinsURL       = "JENKINS_URL"
	EnvTravisCI         = "TRAVIS"
	EnvCircleCI         = "CIRCLECI"
)

// metadataVars maps CI provider variables to the attribute name they are
// reported under. Providers share attribute names so logs look alike.
var metadataVars = map[string]string{
	"GITHUB_RUN_ID":      "ci_run_id",
	"GITHUB_SHA":         "ci_commit",
	"GITHUB_REF_NAME":    "ci_branch",
	"GITHUB_WORKFLOW":    "ci_workflow",
	"CI_PIPELINE_ID":     "ci_run_id",
	"CI_COMMIT_SHA":      "ci_commit",
	"CI_COMMIT_REF_NAME": "ci_branch",
	"CI_JOB_NAME":        "ci_workflow",
}

// IsCI returns true if the current environment is a CI environment.
// It checks for common CI environment variables across different CI providers.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvTravisCI) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// IsGitHubActions returns true if the current environment is GitHub Actions.
func IsGitHubActions() bool {
	return os.Getenv(EnvGitHubActions) != "" && os.Getenv(EnvGitHubWorkspace) != ""
}

// IsGitLabCI returns true if the current environment is GitLab CI.
func IsGitLabCI() bool {
	return os.Getenv(EnvGitLabCI) != "" && os.Getenv(EnvGitLabProjectDir) != ""
}

// Provider names the detected CI provider, "generic" for an unrecognized
// one, or "" outside CI.
func Provider() string {
	switch {
	case IsGitHubActions():
		return "github_actions"
	case IsGitLabCI():
		return "gitlab_ci"
	case os.Getenv(EnvJenkinsURL) != "":
		return "jenkins"
	case os.Getenv(EnvTravisCI) != "":
		return "travis"
	case os.Getenv(EnvCircleCI) != "":
		return "circleci"
	case IsCI():
		return "generic"
	default:
		return ""
	}
}

// Metadata returns the CI run attributes present in the environment, such
// as the commit and branch. Outside CI it returns an empty map.
func Metadata() map[string]string {
	metadata := make(map[string]string)
	if !IsCI() {
		return metadata
	}

	metadata["ci"] = "true"
	metadata["ci_provider"] = Provider()
	for env, key := range metadataVars {
		if v := os.Getenv(env); v != "" {
			metadata[key] = v
		}
	}
	return metadata
}
