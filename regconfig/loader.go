package regconfig

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectProfileFile is the name of the project-level profile file.
	ProjectProfileFile = "autoreg.yaml"
	// UserProfileDir is the directory for the user-level profile.
	UserProfileDir = ".config/autoreg"
	// UserProfileFile is the name of the user-level profile file.
	UserProfileFile = "profile.yaml"
)

// Loader resolves a naming profile with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a profile loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load resolves the effective profile:
// 1. Empty profile (library defaults apply)
// 2. User profile (~/.config/autoreg/profile.yaml)
// 3. Project profile (autoreg.yaml in the current or a parent directory)
func (l *Loader) Load() (*Profile, error) {
	profile := &Profile{}

	userPath := l.userProfilePath()
	if userPath != "" {
		if user, err := Load(userPath); err == nil {
			l.logger.Debug("Loaded user profile", slog.String("path", userPath))
			profile.Merge(user)
		} else if !os.IsNotExist(err) {
			l.logger.Warn("Failed to load user profile",
				slog.String("path", userPath), slog.String("error", err.Error()))
		}
	}

	projectPath := l.findProjectProfile()
	if projectPath != "" {
		project, err := Load(projectPath)
		if err != nil {
			l.logger.Warn("Failed to load project profile",
				slog.String("path", projectPath), slog.String("error", err.Error()))
			return nil, err
		}
		l.logger.Debug("Loaded project profile", slog.String("path", projectPath))
		profile.Merge(project)
	}

	return profile, nil
}

// userProfilePath returns the user-level profile path, or "" when the home
// directory cannot be determined.
func (l *Loader) userProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserProfileDir, UserProfileFile)
}

// findProjectProfile searches the current directory and its parents for a
// project profile file.
func (l *Loader) findProjectProfile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectProfileFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
