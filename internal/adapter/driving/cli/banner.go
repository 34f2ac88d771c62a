package cli

import (
	"fmt"
	"io"

	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer) {
	banner := `
     ___        ______     ____           _     ____            _     _                         _
    / \ \      / / ___|   / ___|___  ___| |_  |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
   / _ \ \ /\ / /\___ \  | |   / _ \/ __| __| | | | |/ _' / __| '_ \| '_ \ / _ \ / _' | '__/ _' |
  / ___ \ V  V /  ___) | | |__| (_) \__ \ |_  | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
 /_/   \_\_/\_/  |____/   \____\___/|___/\__| |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Fprintln(w, blue(fmt.Sprintf("AWS Cost Dashboard CLI (v%s)", formattedVersion)))
}
