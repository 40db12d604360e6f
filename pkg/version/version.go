// Package version reports build metadata, either set with -ldflags
// or read from the module build info.
package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info is the build metadata of an executable
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Tag       string `json:"tag,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Source    string `json:"source,omitempty"`
	Hash      string `json:"hash,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags "-X github.com/mutablelogic/go-toolschema/pkg/version.GitTag=..."
var (
	GitTag    string
	GitBranch string
)

const (
	hashLength = 12
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// New returns the build metadata for the named executable
func New(name string) Info {
	info := Info{
		Name:     name,
		Tag:      GitTag,
		Branch:   GitBranch,
		Compiler: runtime.Version(),
	}
	var goos, goarch string
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
		for _, s := range build.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Hash = s.Value
			case "vcs.time":
				info.BuildTime = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			case "GOOS":
				goos = s.Value
			case "GOARCH":
				goarch = s.Value
			}
		}
	}
	if goos != "" && goarch != "" {
		info.Platform = goos + "/" + goarch
	}
	info.Version = info.version()
	return info
}

// Version returns the tag, branch or short revision hash, or "dev"
func Version() string {
	return New("").Version
}

// JSON returns the indented build metadata for the named executable
func JSON(name string) []byte {
	data, err := json.MarshalIndent(New(name), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (i Info) version() string {
	switch {
	case i.Tag != "":
		return i.Tag
	case i.Branch != "":
		return i.Branch
	case len(i.Hash) >= hashLength:
		return i.Hash[:hashLength]
	case i.Hash != "":
		return i.Hash
	}
	return "dev"
}
