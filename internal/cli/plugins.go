package cli

import (
	"os"
	"strings"

	pathplugin "github.com/macropower/kclpath/pkg/kclplugin/path"
)

func RegisterEnabledPlugins() {
	if !envTrue("KCLPATH_PLUGIN_DISABLED") {
		pathplugin.Register()
	}
}

func envTrue(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
