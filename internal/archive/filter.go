package archive

import (
	"path"
	"regexp"
	"strings"
)

// DocumentExtension is the extension of entries handed to the analyzer.
const DocumentExtension = ".psd"

var sentinelNames = map[string]bool{
	".ds_store":       true,
	"thumbs.db":       true,
	"desktop.ini":     true,
	"ehthumbs.db":     true,
	"icon\r":          true,
	".spotlight-v100": true,
	".trashes":        true,
	".fseventsd":      true,
	".localized":      true,
}

var metadataMarkers = []string{"__MACOSX/", ".Spotlight-V100/", ".Trashes/", ".fseventsd/"}

var tempSuffix = regexp.MustCompile(`(?i)(~|\.(tmp|temp|bak|swp|part|crdownload))$`)

// IsArtifact reports whether an entry name was generated by an operating system or editor
// rather than by the student.
func IsArtifact(name string) bool {
	n := strings.ReplaceAll(name, "\\", "/")
	base := path.Base(strings.TrimSuffix(n, "/"))
	switch {
	case sentinelNames[strings.ToLower(base)]:
		return true
	case strings.HasPrefix(base, "._"), strings.HasPrefix(base, "~$"):
		return true
	case tempSuffix.MatchString(base):
		return true
	}
	for _, m := range metadataMarkers {
		if strings.Contains(n, m) {
			return true
		}
	}
	return false
}

// IsDocument reports whether name carries the document extension.
func IsDocument(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), DocumentExtension)
}

// IsContainer reports whether name looks like a supported container.
func IsContainer(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".zip")
}
