package api

import (
	"net/url"
)

// DefaultContinueURL is the deep link the app registers for sign-in callbacks.
const DefaultContinueURL = "micromuu://auth/callback"

const (
	linkModeParam = "mode"
	linkModeValue = "signIn"
	linkCodeParam = "oobCode"
)

// BuildSignInLink appends the sign-in parameters to continueURL.
func BuildSignInLink(continueURL, code string) (string, error) {
	u, err := url.Parse(continueURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(linkModeParam, linkModeValue)
	q.Set(linkCodeParam, code)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseSignInLink extracts the one-time code; ok is false for anything that is not a sign-in link.
func ParseSignInLink(link string) (code string, ok bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	q := u.Query()
	if q.Get(linkModeParam) != linkModeValue {
		return "", false
	}
	code = q.Get(linkCodeParam)
	return code, code != ""
}
