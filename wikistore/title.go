package wikistore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTitle is returned by [MakeTitle] when name is empty or
// contains a wiki-forbidden character.
var ErrInvalidTitle = errors.New("wikistore: invalid title")

// Title is a (namespace, text) pair identifying a wiki page (§6.1).
// Namespace is the conventional prefix ("Property", "Category",
// "Template", "Form", "Subobject") or "" for the main namespace.
type Title struct {
	Namespace string
	Text      string
}

// String renders the title the way the wiki would display it:
// "Namespace:Text", or bare Text when Namespace is "".
func (t Title) String() string {
	if t.Namespace == "" {
		return t.Text
	}

	return fmt.Sprintf("%s:%s", t.Namespace, t.Text)
}

const forbiddenTitleChars = "<>{}|#"

// MakeTitle validates name and constructs a [Title] in namespace.
func MakeTitle(name, namespace string) (Title, error) {
	if name == "" {
		return Title{}, fmt.Errorf("%w: name must not be empty", ErrInvalidTitle)
	}

	if strings.ContainsAny(name, forbiddenTitleChars) {
		return Title{}, fmt.Errorf("%w: %q contains a forbidden character", ErrInvalidTitle, name)
	}

	return Title{Namespace: namespace, Text: name}, nil
}
