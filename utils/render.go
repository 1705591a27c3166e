package utils

import (
	"fmt"
	"io"

	"github.com/pubgo/funk/v2/errors"
)

// The output contract: two fixed header lines, then the raw response text,
// newline terminated. Nothing else touches the rendered stream.
const (
	responseHeader  = "Model Response:"
	responseDivider = "---------------"
)

func RenderResponse(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", responseHeader, responseDivider, text)
	return errors.WrapCaller(err)
}
