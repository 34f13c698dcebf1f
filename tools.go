//go:build tools

package ddns

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
