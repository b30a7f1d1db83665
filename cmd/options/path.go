package options

import (
	"os"
	"path"
	"strings"

	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

func ensureAbsPath(location string) string {
	location = expandHomeDir(location)
	if location == "" {
		return location
	}
	if !url.IsRelative(location) {
		return location
	}
	if wd, _ := os.Getwd(); wd != "" {
		return url.Join(wd, location)
	}
	return location
}

func expandHomeDir(location string) string {
	if strings.HasPrefix(location, "~") {
		location = strings.Replace(location, "~", os.Getenv("HOME"), 1)
	}
	return location
}

// expandRelative resolves location against base URL
func expandRelative(location string, baseURL string) string {
	if location == "" || !url.IsRelative(location) || baseURL == "" {
		return location
	}
	return url.Join(baseURL, location)
}

// stem returns file name without extension
func stem(location string) string {
	_, name := url.Split(location, file.Scheme)
	if ext := path.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
