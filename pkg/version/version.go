package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
)

const (
	devVersion = "0.0.0-dev"
	modulePath = "github.com/diillson/aws-cost-dashboard-go"

	// EnvReleasesURL sobrescreve o endpoint da verificação de versão; "off" desativa.
	EnvReleasesURL = "DASHBOARD_RELEASES_URL"
)

var ErrReleaseCheckDisabled = errors.New("release check disabled")

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = devVersion
var Commit = ""
var BuildTime = ""

// releasesURL aponta para a última release publicada do módulo.
var releasesURL = githubReleasesURL(modulePath)

// githubReleasesURL monta o endpoint da última release para um módulo
// hospedado no GitHub; outros hosts não têm verificação.
func githubReleasesURL(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 3 || parts[0] != "github.com" {
		return ""
	}
	return fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", parts[1], parts[2])
}

func latestReleaseURL() string {
	switch v := strings.TrimSpace(os.Getenv(EnvReleasesURL)); {
	case strings.EqualFold(v, "off"):
		return ""
	case v != "":
		return v
	}
	return releasesURL
}

// populateFromBuildInfo preenche Version/Commit/BuildTime a partir do build info
// quando o ldflags não definiu uma versão.
func populateFromBuildInfo() {
	if Version != "" && Version != devVersion {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	// vcs.revision: usamos o SHA curto
	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}

	if t := settings["vcs.time"]; BuildTime == "" && t != "" {
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	// Fork instalado com outro caminho de módulo
	if bi.Main.Path != "" && bi.Main.Path != modulePath {
		if u := githubReleasesURL(bi.Main.Path); u != "" {
			releasesURL = u
		}
	}

	// Módulo instalado via go install: bi.Main.Version traz a tag
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		Version = strings.TrimPrefix(v, "v")
		if strings.EqualFold(settings["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

func init() {
	populateFromBuildInfo()
}

// LatestVersion consulta a última release publicada, sem o prefixo "v".
func LatestVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	endpoint := latestReleaseURL()
	if endpoint == "" {
		return "", ErrReleaseCheckDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return "", err
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// CheckLatestVersion avisa quando existe uma versão mais recente publicada.
// Versões de desenvolvimento não são verificadas e falhas são ignoradas.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	latest, err := LatestVersion(context.Background())
	if err != nil {
		log.WithError(err).Debug("Release check skipped")
		return
	}
	if !IsNewer(latest, currentVersion) {
		return
	}

	pterm.Warning.Println(fmt.Sprintf("A new version of AWS Cost Dashboard is available: %s", latest))
	pterm.Info.Println("Please update using: go install " + modulePath + "/cmd/aws-cost-dashboard@latest")
}

// IsNewer compara versões semânticas "x.y.z"; sufixos como "-dirty" são ignorados.
func IsNewer(candidate, current string) bool {
	a, b := parts(candidate), parts(current)
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func parts(v string) [3]int {
	var out [3]int
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	for i, p := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(p)
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	if Commit == "" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
