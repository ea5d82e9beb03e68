package repository

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Marker       string // Marker file that identified the root
	Name         string // Name of the project (extracted from config files)
	RelativePath string // Path from project root to the specified file
}

// pyProject represents subset of pyproject.toml used for naming
type pyProject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}
