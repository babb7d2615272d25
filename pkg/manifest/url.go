package manifest

import (
	neturl "net/url"
	"regexp"
	"strings"
)

// shorthandHosts maps repository shorthand keys to their canonical domains.
var shorthandHosts = map[string]string{
	"github":    "github.com",
	"gitlab":    "gitlab.com",
	"bitbucket": "bitbucket.org",
}

var gitSSHShorthand = regexp.MustCompile(`^git@([^:]+):(.+)$`)

// DeriveHomepage converts a repository field value to a canonical HTTPS
// homepage URL. The value may be a string or an object with a url sub-field.
//
// Handled forms, first match wins:
//
//	git+ssh://git@github.com/user/repo.git -> https://github.com/user/repo
//	git@github.com:user/repo.git           -> https://github.com/user/repo
//	https://github.com/user/repo.git       -> https://github.com/user/repo
//	github:user/repo                       -> https://github.com/user/repo
//
// An unmatched or malformed value yields "", never an error.
func DeriveHomepage(repo any) string {
	var url string
	switch v := repo.(type) {
	case string:
		url = strings.TrimSpace(v)
	case map[string]any:
		if s, ok := v["url"].(string); ok {
			url = strings.TrimSpace(s)
		}
	default:
		return ""
	}
	if url == "" {
		return ""
	}

	url = strings.TrimPrefix(url, "git+")

	if strings.HasPrefix(url, "ssh://") {
		u, err := neturl.Parse(url)
		if err != nil {
			return ""
		}
		host := u.Hostname()
		path := strings.TrimPrefix(u.Path, "/")
		path = strings.TrimSuffix(path, ".git")
		if host == "" || path == "" {
			return ""
		}
		return "https://" + host + "/" + path
	}

	if m := gitSSHShorthand.FindStringSubmatch(url); m != nil {
		return "https://" + m[1] + "/" + strings.TrimSuffix(m[2], ".git")
	}

	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return strings.TrimSuffix(url, ".git")
	}

	// Short forms: github:user/repo, gitlab:user/repo, bitbucket:user/repo
	if i := strings.Index(url, ":"); i > 0 {
		domain, ok := shorthandHosts[strings.ToLower(url[:i])]
		if path := url[i+1:]; ok && path != "" {
			return "https://" + domain + "/" + path
		}
	}

	return ""
}
