package common

import (
	"io"
	"strings"
)

func StringReader(s string) io.Reader {
	return strings.NewReader(s)
}
