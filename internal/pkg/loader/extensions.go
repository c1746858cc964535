package loader

import (
	"sort"

	"github.com/samber/lo"
)

// extractCommands maps an archive extension to the command that unpacks it.
// It is never written to after initialization.
var extractCommands = map[string]string{
	"gz":   "gunzip",
	"zip":  "unzip",
	"rar":  "unrar x",
	"tar":  "tar xvf",
	"tgz":  "tar xvzf",
	"tbz2": "tar xvjf",
}

// ExtractCommand returns the decompression command for ext.
func ExtractCommand(ext string) (string, bool) {
	cmd, ok := extractCommands[ext]
	return cmd, ok
}

// SupportedExtensions returns the known extensions in lexical order.
func SupportedExtensions() []string {
	exts := lo.Keys(extractCommands)
	sort.Strings(exts)

	return exts
}
