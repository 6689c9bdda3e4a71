package crossboard

import (
	"io"

	"github.com/spf13/viper"

	"github.com/mwiater/crossboard/internal/appconfig"
)

func runShowConfig(out io.Writer) {
	appconfig.ShowConfig(out, viper.ConfigFileUsed(), GetConfig())
}
