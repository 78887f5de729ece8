package entities

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// DefaultLanguage is used when settings do not name one
const DefaultLanguage = "en"

// NormalizeLanguage validates a language code and returns its canonical form
// ("EN" becomes "en", "pt_br" becomes "pt-BR").
func NormalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return "", errors.InvalidArgument("language is required")
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid language code").
			WithMeta("language", code)
	}
	if tag == language.Und {
		return "", errors.InvalidArgumentf("invalid language code %q", code)
	}

	return tag.String(), nil
}

// LanguageName returns the English display name of a language code, falling
// back to the code itself when it cannot be parsed.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}
