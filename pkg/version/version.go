package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time:
//
//	go build -ldflags "-X <module>/pkg/version.Version=1.2.0 -X <module>/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	AppName   = "answer-similarity"
	Version   = "0.1.0"
	Commit    = "dev"
	BuildDate = "unknown"
)

type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// UserAgent identifies this build to model runtimes and the model hub.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s)", AppName, Version, Commit)
}
