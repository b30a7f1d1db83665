package env

import (
	"runtime"
	"strings"
	"time"
)

var (
	GoVersion string
	BuildTime time.Time
)

func init() {
	GoVersion = strings.Replace(runtime.Version(), "go", "", 1)
}
