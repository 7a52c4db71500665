package restyutil

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			out.WriteString(fmt.Sprintf("%s: %s\n", k, v))
		}
	}
	return strings.TrimSuffix(out.String(), "\n")
}

// 1: request method
// 2: request url
// 3: request headers in ("Key: Value" format)
// 4: response status
// 5: response url
// 6: response headers in ("Key: Value" format)
// 7: response body
const messageInfoTemplate = `---- REQUEST ----

%s %s

%s

---- RESPONSE ----

%s %s

%s

%s`

func formatHttpMessage(res *resty.Response) string {
	req := res.Request

	reqUrl := req.URL
	reqHeaders := ""
	if req.RawRequest != nil {
		reqHeaders = formatHeaders(req.RawRequest.Header)
	}

	return fmt.Sprintf(
		messageInfoTemplate,
		req.Method,
		reqUrl,
		reqHeaders,
		res.Status(),
		res.RawResponse.Request.URL.String(),
		formatHeaders(res.Header()),
		res.String(),
	)
}
