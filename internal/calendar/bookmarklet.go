package calendar

import (
	"encoding/json"
	"net/url"
	"strings"
)

// bookmarkletJS runs in the page the bookmark was clicked on. It takes no
// input from the page and returns nothing; it only triggers the download and
// shows a notice that removes itself.
const bookmarkletJS = `(function(){` +
	`var a=document.createElement('a');` +
	`a.href='data:%MIME%;charset=utf-8,'+encodeURIComponent(%ICS%);` +
	`a.download=%NAME%;` +
	`document.body.appendChild(a);a.click();a.remove();` +
	`var n=document.createElement('div');` +
	`n.textContent='Calendar event downloaded: '+%NAME%;` +
	`n.style.cssText='position:fixed;top:16px;right:16px;z-index:2147483647;padding:12px 16px;` +
	`background:#111;color:#fff;font:14px sans-serif;border-radius:6px';` +
	`document.body.appendChild(n);setTimeout(function(){n.remove()},3000);` +
	`})();void 0`

// Bookmarklet returns a javascript: URL that downloads content as filename.
func Bookmarklet(content, filename string) string {
	if !strings.HasSuffix(strings.ToLower(filename), Extension) {
		filename += Extension
	}

	js := strings.NewReplacer(
		"%MIME%", MIMEType,
		"%ICS%", jsString(content),
		"%NAME%", jsString(filename),
	).Replace(bookmarkletJS)

	// Browsers decode the URL once before running it
	return "javascript:" + url.PathEscape(js)
}

// jsString renders s as a JavaScript string literal
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
