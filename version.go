package vidvault

import "fmt"

// Semantic version of the server, overridable at build time with -ldflags.
var (
	major = 0
	minor = 1
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
