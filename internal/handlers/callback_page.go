package handlers

import (
	"bytes"
	"elite-dashboard/internal/middlewares"
	"html/template"
	"net/http"
	"net/url"
	"os"
)

const callbackPath = "/api/auth/discord/callback"

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Discord login</title>
</head>
<body>
<script>
window.opener?.postMessage({ type: "discordAuthComplete", success: {{.Success}} }, {{.TargetOrigin}});
window.close();
window.history.replaceState({}, document.title, {{.Path}});
</script>
<p>{{.Message}}</p>
</body>
</html>
`))

type callbackPageData struct {
	Success      bool
	TargetOrigin string
	Path         string
	Message      string
}

// renderCallbackPage writes the popup page that reports the outcome to its opener and closes itself.
func renderCallbackPage(ctx *middlewares.AppContext, status int, success bool) {
	if page, ok := readCustomCallbackPage(ctx); ok {
		ctx.WriteHTML(status, page)
		return
	}

	message := "Login failed. You can close this window."
	if success {
		message = "Login complete. You can close this window."
	}

	var buf bytes.Buffer
	err := callbackPage.Execute(&buf, callbackPageData{
		Success:      success,
		TargetOrigin: messageTargetOrigin(ctx.Config.Server.ExternalURL),
		Path:         callbackPath,
		Message:      message,
	})
	if err != nil {
		ctx.Logger.Error("failed to render callback page", "error", err)
		http.Error(ctx.Response, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	ctx.WriteHTML(status, buf.Bytes())
}

// messageTargetOrigin restricts postMessage to the dashboard origin when it is known.
// readCustomCallbackPage loads server.callback_page from disk on every call so
// the page can be edited without a restart. Any read failure falls back to the built-in page.
func readCustomCallbackPage(ctx *middlewares.AppContext) ([]byte, bool) {
	path := ctx.Config.Server.CallbackPage
	if path == "" {
		return nil, false
	}

	page, err := os.ReadFile(path)
	if err != nil {
		ctx.Logger.Debug("failed to read callback page, using built-in page", "path", path, "error", err)
		return nil, false
	}

	return page, true
}

func messageTargetOrigin(externalURL string) string {
	u, err := url.Parse(externalURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "*"
	}

	return u.Scheme + "://" + u.Host
}
