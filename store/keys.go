package store

import (
	"fmt"
	"strings"

	"github.com/gramatica-es/sintaxis"
)

// formPrefix prefixes every lexicon form key.
// Format: lexfrm:<category label>:<normalized form>
const formPrefix = "lexfrm"

func makeFormKey(c sintaxis.Category, form string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", formPrefix, c, form))
}

func makeFormPrefix() []byte {
	return []byte(formPrefix + ":")
}

// parseFormKey splits a form key into its category and form.
func parseFormKey(key []byte) (sintaxis.Category, string, error) {
	parts := strings.SplitN(string(key), ":", 3)
	if len(parts) != 3 || parts[0] != formPrefix {
		return 0, "", fmt.Errorf("%w: %q", ErrCorruptKey, key)
	}
	c, err := sintaxis.ParseCategory(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrCorruptKey, err)
	}
	return c, parts[2], nil
}
