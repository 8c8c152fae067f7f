package oracle

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultLanguage is used when the environment names no usable locale.
const DefaultLanguage = "en"

// languageEnv lists the variables consulted, highest priority first.
var languageEnv = []string{"SUGGESTLOG_LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

var (
	languageOnce sync.Once
	language     string
)

// ResolveLanguage returns the process language. It is read from the
// environment on the first call and never changes afterwards.
func ResolveLanguage() string {
	languageOnce.Do(func() {
		language = languageFromEnv(os.Getenv)
		log.Debugf("Resolved language: %s", language)
	})
	return language
}

func languageFromEnv(getenv func(string) string) string {
	for _, key := range languageEnv {
		if lang := NormalizeLanguage(getenv(key)); lang != "" {
			return lang
		}
	}
	return DefaultLanguage
}

// NormalizeLanguage reduces a locale such as "en_US.UTF-8" or "fr-CA" to its
// lowercase language code. The POSIX locales "C" and "POSIX" carry no
// language and normalize to "".
func NormalizeLanguage(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexAny(locale, "_-"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ToLower(locale)
	if locale == "c" || locale == "posix" {
		return ""
	}
	return locale
}
