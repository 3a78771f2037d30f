package handlers

import (
	"encoding/json"
	"strconv"

	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
)

type okResponse struct {
	OK bool `json:"ok"`
}

func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := ctx.PostBody()
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeRawJSON(ctx *xhttp.RequestCtx, status int, b []byte) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func writeError(ctx *xhttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// queryIntInRange parses an optional bounded integer query parameter.
// An absent value yields def; a malformed or out-of-range one yields ok=false
// so the boundary can answer 422 before anything reaches the core.
func queryIntInRange(ctx *xhttp.RequestCtx, key string, def, min, max int) (val int, ok bool) {
	v := query(ctx, key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
